// Package config loads CLI configuration from dlint.yaml, environment
// variables, and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/dlint-dev/dlint/pkg/lint"
)

// Config holds the CLI configuration.
type Config struct {
	Format  string      `koanf:"format"`
	Verbose bool        `koanf:"verbose"`
	Tags    []string    `koanf:"tags"`
	Rules   RulesConfig `koanf:"rules"`
}

// RulesConfig selects and tunes rules.
type RulesConfig struct {
	Include  []string          `koanf:"include"`
	Exclude  []string          `koanf:"exclude"`
	Severity map[string]string `koanf:"severity"`
}

// configFileUsed records which config file was loaded, for verbose output.
var configFileUsed string

// GetConfigFileUsed returns the path of the loaded config file, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// findConfigFile finds the config file to use.
// Priority: explicit path > dlint.yaml > dlint.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("dlint.yaml"); err == nil {
		return "dlint.yaml"
	}
	if _, err := os.Stat("dlint.yml"); err == nil {
		return "dlint.yml"
	}
	return ""
}

// Load builds the configuration from defaults, the config file, DLINT_*
// environment variables, and flags, in that precedence order.
func Load(explicitFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// Defaults.
	defaults := map[string]any{
		"format":  "",
		"verbose": false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Config file.
	if path := findConfigFile(explicitFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		configFileUsed = path
	} else if explicitFile != "" {
		return nil, fmt.Errorf("config file %s not found", explicitFile)
	}

	// Environment: DLINT_RULES_INCLUDE=... maps to rules.include.
	envProvider := env.Provider("DLINT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DLINT_")), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	// Flags take highest precedence.
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			TagName:          "koanf",
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// ToLintConfig converts the CLI configuration into an engine config.
func (c *Config) ToLintConfig() (*lint.Config, error) {
	lintCfg := lint.NewConfig()
	for _, code := range c.Rules.Include {
		lintCfg.Include(strings.TrimSpace(code))
	}
	for _, tag := range c.Tags {
		lintCfg.IncludeTag(strings.TrimSpace(tag))
	}
	for _, code := range c.Rules.Exclude {
		lintCfg.Disable(strings.TrimSpace(code))
	}
	for code, name := range c.Rules.Severity {
		sev, ok := lint.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("rule %s: unknown severity %q", code, name)
		}
		lintCfg.SetSeverity(code, sev)
	}
	return lintCfg, nil
}
