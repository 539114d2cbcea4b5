package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_NilReceiverIsPermissive(t *testing.T) {
	var cfg *Config

	assert.False(t, cfg.IsDisabled("rule-a"))
	assert.Equal(t, SeverityWarning, cfg.GetSeverity("rule-a", SeverityWarning))
}

func TestConfig_DisableAndSeverity(t *testing.T) {
	cfg := NewConfig().
		Disable("rule-a").
		SetSeverity("rule-b", SeverityHint)

	assert.True(t, cfg.IsDisabled("rule-a"))
	assert.False(t, cfg.IsDisabled("rule-b"))
	assert.Equal(t, SeverityHint, cfg.GetSeverity("rule-b", SeverityError))
	assert.Equal(t, SeverityError, cfg.GetSeverity("rule-a", SeverityError))
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "hint", SeverityHint.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestParseSeverity(t *testing.T) {
	for name, want := range map[string]Severity{
		"error":   SeverityError,
		"warning": SeverityWarning,
		"info":    SeverityInfo,
		"hint":    SeverityHint,
	} {
		got, ok := ParseSeverity(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ParseSeverity("fatal")
	assert.False(t, ok)
}
