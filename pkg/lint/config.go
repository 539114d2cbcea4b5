package lint

// Config controls which rules run and their severity.
type Config struct {
	// IncludeCodes restricts the run to specific rule codes. Empty means
	// no code restriction.
	IncludeCodes []string

	// IncludeTags restricts the run to rules carrying one of these tags.
	// Empty means no tag restriction.
	IncludeTags []string

	// DisabledRules contains rule codes to skip.
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules.
	SeverityOverrides map[string]Severity
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(code string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[code]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(code string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[code]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// Disable disables a rule by code.
func (c *Config) Disable(code string) *Config {
	c.DisabledRules[code] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(code string, severity Severity) *Config {
	c.SeverityOverrides[code] = severity
	return c
}

// Include restricts the run to the given rule codes.
func (c *Config) Include(codes ...string) *Config {
	c.IncludeCodes = append(c.IncludeCodes, codes...)
	return c
}

// IncludeTag restricts the run to rules carrying the given tag.
func (c *Config) IncludeTag(tags ...string) *Config {
	c.IncludeTags = append(c.IncludeTags, tags...)
	return c
}
