package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlint-dev/dlint/pkg/lint"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRulesCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRulesCommand_ListJSON(t *testing.T) {
	out, err := execute(t, "--format", "json")
	require.NoError(t, err)

	var infos []lint.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))

	codes := make([]string, 0, len(infos))
	for _, info := range infos {
		codes = append(codes, info.Code)
	}
	// Sorted for display.
	assert.Equal(t, []string{
		"no-duplicate-case",
		"no-empty-interface",
		"no-ex-assign",
		"no-extra-semi",
	}, codes)
}

func TestRulesCommand_TagFilter(t *testing.T) {
	out, err := execute(t, "--format", "json", "--tag", "recommended")
	require.NoError(t, err)

	var infos []lint.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Len(t, infos, 4, "every built-in rule is recommended")

	out, err = execute(t, "--format", "json", "--tag", "no-such-tag")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Empty(t, infos)
}

func TestRulesCommand_ListMarkdown(t *testing.T) {
	out, err := execute(t, "--format", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Lint rules")
	assert.Contains(t, out, "## no-extra-semi")
	assert.Contains(t, out, "Tags: recommended")
	// Docs only appear in verbose mode.
	assert.NotContains(t, out, "### Invalid:")

	out, err = execute(t, "--format", "markdown", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "### Invalid:")
	assert.Contains(t, out, "### Valid:")
}

func TestRulesCommand_ShowRule(t *testing.T) {
	out, err := execute(t, "no-extra-semi", "--format", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# no-extra-semi")
	assert.Contains(t, out, "Disallows the use of unnecessary semi-colons")
	assert.Contains(t, out, "### Invalid:")
}

func TestRulesCommand_ShowRuleJSON(t *testing.T) {
	out, err := execute(t, "no-duplicate-case", "--format", "json")
	require.NoError(t, err)

	var info lint.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "no-duplicate-case", info.Code)
	assert.Contains(t, info.Tags, "recommended")
	assert.NotEmpty(t, info.Docs)
}

func TestRulesCommand_UnknownRule(t *testing.T) {
	_, err := execute(t, "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown rule "does-not-exist"`)
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dlint")
}
