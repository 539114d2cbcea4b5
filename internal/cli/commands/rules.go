package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dlint-dev/dlint/internal/cli/output"
	"github.com/dlint-dev/dlint/pkg/lint"
	_ "github.com/dlint-dev/dlint/pkg/lint/rules" // register built-in rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Tag     string // Filter by tag
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [code]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Use --verbose to see full documentation including invalid and valid examples.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  dlint rules

  # Show details for a specific rule
  dlint rules no-extra-semi

  # List recommended rules only
  dlint rules --tag recommended

  # Output as JSON
  dlint rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Filter by tag")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func newRenderer(cmd *cobra.Command, format string) *output.Renderer {
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := newRenderer(cmd, opts.Format)

	rules := lint.AllRules()
	if opts.Tag != "" {
		var filtered []lint.RuleInfo
		for _, rule := range rules {
			for _, tag := range rule.Tags {
				if tag == opts.Tag {
					filtered = append(filtered, rule)
					break
				}
			}
		}
		rules = filtered
	}

	// Stable display order; the engine itself runs in registration order.
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Code < rules[j].Code
	})

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules, opts.Verbose)
	default:
		return listRulesText(r, rules)
	}
}

func listRulesText(r *output.Renderer, rules []lint.RuleInfo) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.AppendHeader(table.Row{"Code", "Tags", "Severity", "Description"})
	for _, rule := range rules {
		t.AppendRow(table.Row{
			rule.Code,
			strings.Join(rule.Tags, ", "),
			rule.Severity.String(),
			rule.Description,
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	r.Println(output.SubtleStyle.Render(fmt.Sprintf("%d rules", len(rules))))
	return nil
}

func listRulesMarkdown(r *output.Renderer, rules []lint.RuleInfo, verbose bool) error {
	r.Println("# Lint rules")
	r.Println()
	for _, rule := range rules {
		r.Printf("## %s\n\n", rule.Code)
		r.Printf("%s\n\n", rule.Description)
		if len(rule.Tags) > 0 {
			r.Printf("Tags: %s\n\n", strings.Join(rule.Tags, ", "))
		}
		if verbose && rule.Docs != "" {
			r.Println(rule.Docs)
			r.Println()
		}
	}
	return nil
}

func showRule(cmd *cobra.Command, code string, opts *RulesOptions) error {
	r := newRenderer(cmd, opts.Format)

	rule, ok := lint.GetByCode(code)
	if !ok {
		return fmt.Errorf("unknown rule %q (run `dlint rules` for the full list)", code)
	}
	info := lint.GetRuleInfo(rule)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		r.Printf("# %s\n\n%s\n\n", info.Code, info.Description)
		r.Println(info.Docs)
		return nil
	default:
		r.Println(output.TitleStyle.Render(info.Code))
		r.Println(output.TagStyle.Render(strings.Join(info.Tags, ", ")))
		r.Println()
		r.Println(info.Description)
		r.Println()
		r.Println(info.Docs)
		return nil
	}
}
