// Package cli provides the command-line interface for dlint.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dlint-dev/dlint/internal/cli/commands"
	"github.com/dlint-dev/dlint/internal/cli/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dlint",
		Short: "dlint - lint rules for ECMAScript and TypeScript",
		Long: `dlint is the rule engine of a linter for ECMAScript / TypeScript.

The engine itself is a library: a host parses source, hands dlint the
syntax tree with a span resolver and scope map, and collects diagnostics.
This CLI is the tooling surface around the rule registry: browse rules,
inspect their documentation, and check configuration.`,
		Version: commands.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./dlint.yaml)")
	rootCmd.PersistentFlags().String("format", "", "Output format: text, markdown, json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		commands.NewRulesCommand(),
		commands.NewVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
