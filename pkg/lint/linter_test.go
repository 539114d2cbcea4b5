package lint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlint-dev/dlint/pkg/ast"
	"github.com/dlint-dev/dlint/pkg/source"
	"github.com/dlint-dev/dlint/pkg/token"
)

// reportAt returns a run func that reports one finding per given offset,
// in order.
func reportAt(code string, file *source.File, offsets ...int) RunFunc {
	return func(ctx *Context, program *ast.Program) {
		for _, off := range offsets {
			ctx.Report(token.NewSpan(file.Name(), off, off+1), code, "finding", "")
		}
	}
}

func TestLinter_GroupsByRegistrationOrder(t *testing.T) {
	resetRegistry(t)
	file := source.NewFile("test.ts", "abcdef")

	// rule-late registers first but reports the later offset; its findings
	// must still come first.
	late := stubRule("rule-late")
	late.Run = reportAt("rule-late", file, 4)
	Register(late)

	early := stubRule("rule-early")
	early.Run = reportAt("rule-early", file, 0, 2)
	Register(early)

	prog := &ast.Program{Span: file.Extent()}
	diags := NewLinter(nil).Lint(prog, file, nil)

	require.Len(t, diags, 3)
	assert.Equal(t, "rule-late", diags[0].Code)
	assert.Equal(t, "rule-early", diags[1].Code)
	assert.Equal(t, "rule-early", diags[2].Code)
	// Within one rule, report order holds.
	assert.Equal(t, 0, diags[1].Span.Lo)
	assert.Equal(t, 2, diags[2].Span.Lo)
}

func TestLinter_Deterministic(t *testing.T) {
	resetRegistry(t)
	file := source.NewFile("test.ts", "abcdef")

	r := stubRule("rule-a")
	r.Run = reportAt("rule-a", file, 1, 3, 5)
	Register(r)

	l := NewLinter(nil)
	prog := &ast.Program{Span: file.Extent()}

	first := l.Lint(prog, file, nil)
	second := l.Lint(prog, file, nil)
	require.Equal(t, first, second)
}

func TestLinter_StampsSeverity(t *testing.T) {
	resetRegistry(t)
	file := source.NewFile("test.ts", "abcdef")

	errRule := stubRule("rule-err")
	errRule.Run = reportAt("rule-err", file, 0)
	Register(errRule)

	hintRule := stubRule("rule-hint")
	hintRule.Severity = SeverityHint
	hintRule.Run = reportAt("rule-hint", file, 1)
	Register(hintRule)

	prog := &ast.Program{Span: file.Extent()}

	t.Run("defaults", func(t *testing.T) {
		diags := NewLinter(nil).Lint(prog, file, nil)
		require.Len(t, diags, 2)
		assert.Equal(t, SeverityError, diags[0].Severity)
		assert.Equal(t, SeverityHint, diags[1].Severity)
	})

	t.Run("override", func(t *testing.T) {
		cfg := NewConfig().SetSeverity("rule-err", SeverityWarning)
		diags := NewLinter(cfg).Lint(prog, file, nil)
		require.Len(t, diags, 2)
		assert.Equal(t, SeverityWarning, diags[0].Severity)
		assert.Equal(t, SeverityHint, diags[1].Severity)
	})
}

func TestLinter_RuleSelection(t *testing.T) {
	resetRegistry(t)
	file := source.NewFile("test.ts", "abcdef")

	for _, code := range []string{"rule-a", "rule-b", "rule-c"} {
		r := stubRule(code)
		if code != "rule-c" {
			r.Tags = []string{TagRecommended}
		}
		r.Run = reportAt(code, file, 0)
		Register(r)
	}

	prog := &ast.Program{Span: file.Extent()}

	t.Run("include codes keeps registration order", func(t *testing.T) {
		cfg := NewConfig().Include("rule-c", "rule-a")
		diags := NewLinter(cfg).Lint(prog, file, nil)
		require.Len(t, diags, 2)
		assert.Equal(t, "rule-a", diags[0].Code)
		assert.Equal(t, "rule-c", diags[1].Code)
	})

	t.Run("include tags", func(t *testing.T) {
		cfg := NewConfig().IncludeTag(TagRecommended)
		diags := NewLinter(cfg).Lint(prog, file, nil)
		require.Len(t, diags, 2)
		assert.Equal(t, "rule-a", diags[0].Code)
		assert.Equal(t, "rule-b", diags[1].Code)
	})

	t.Run("disabled rule is skipped", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Disable("rule-b")
		diags := NewLinter(cfg).Lint(prog, file, nil)
		require.Len(t, diags, 2)
		assert.Equal(t, "rule-a", diags[0].Code)
		assert.Equal(t, "rule-c", diags[1].Code)
	})

	t.Run("unknown include codes select nothing", func(t *testing.T) {
		cfg := NewConfig().Include("rule-missing")
		assert.Empty(t, NewLinter(cfg).Lint(prog, file, nil))
	})
}

func TestLinter_LintAll(t *testing.T) {
	resetRegistry(t)
	file := source.NewFile("test.ts", "abcdef")

	r := stubRule("rule-a")
	r.Run = reportAt("rule-a", file, 0)
	Register(r)

	l := NewLinter(nil)

	t.Run("results in target order", func(t *testing.T) {
		targets := make([]Target, 8)
		for i := range targets {
			targets[i] = Target{
				Program: &ast.Program{Span: file.Extent()},
				Source:  file,
			}
		}

		results, err := l.LintAll(context.Background(), targets)
		require.NoError(t, err)
		require.Len(t, results, len(targets))
		for i, diags := range results {
			require.Len(t, diags, 1, "target %d", i)
			assert.Equal(t, "rule-a", diags[0].Code)
		}
	})

	t.Run("nil program fails", func(t *testing.T) {
		targets := []Target{
			{Program: &ast.Program{Span: file.Extent()}, Source: file},
			{Source: file},
		}

		_, err := l.LintAll(context.Background(), targets)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil program")
	})
}
