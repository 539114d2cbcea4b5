package lint

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dlint-dev/dlint/pkg/ast"
)

// Linter runs registered rules against parsed programs.
type Linter struct {
	config *Config
	logger *slog.Logger
}

// NewLinter creates a linter with optional configuration. A nil config
// enables every registered rule at its default severity.
func NewLinter(config *Config) *Linter {
	if config == nil {
		config = NewConfig()
	}
	return &Linter{config: config}
}

// SetLogger attaches a structured logger for per-rule debug output.
func (l *Linter) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

// selectRules resolves the configured rule set in registration order.
func (l *Linter) selectRules() []Rule {
	var selected []Rule
	if len(l.config.IncludeCodes) > 0 {
		want := make(map[string]bool, len(l.config.IncludeCodes))
		for _, code := range l.config.IncludeCodes {
			want[code] = true
		}
		for _, rule := range All() {
			if want[rule.Code()] {
				selected = append(selected, rule)
			}
		}
		return selected
	}
	if len(l.config.IncludeTags) > 0 {
		seen := make(map[string]bool)
		for _, rule := range All() {
			for _, tag := range rule.Tags() {
				for _, want := range l.config.IncludeTags {
					if tag == want && !seen[rule.Code()] {
						seen[rule.Code()] = true
						selected = append(selected, rule)
					}
				}
			}
		}
		return selected
	}
	return All()
}

// Lint runs the configured rule set over one program and returns the
// diagnostics, grouped by rule in registration order. Within one rule the
// diagnostics follow that rule's visitation order.
func (l *Linter) Lint(program *ast.Program, src SpanResolver, scopes ScopeMap) []Diagnostic {
	ctx := NewContext(program, src, scopes)

	for _, rule := range l.selectRules() {
		if l.config.IsDisabled(rule.Code()) {
			continue
		}

		before := len(ctx.diags)
		rule.Run(ctx, program)

		// Stamp severity on this rule's findings, applying overrides.
		severity := l.config.GetSeverity(rule.Code(), rule.DefaultSeverity())
		for i := before; i < len(ctx.diags); i++ {
			ctx.diags[i].Severity = severity
		}

		if l.logger != nil {
			l.logger.Debug("rule finished",
				"code", rule.Code(),
				"diagnostics", len(ctx.diags)-before)
		}
	}

	return ctx.Diagnostics()
}

// Target is one parsed program with its host-provided capabilities.
type Target struct {
	Program *ast.Program
	Source  SpanResolver
	Scopes  ScopeMap
}

// LintAll lints independent programs concurrently, one goroutine per
// program up to GOMAXPROCS. Rule execution within each program stays
// sequential. Results are returned in target order.
func (l *Linter) LintAll(ctx context.Context, targets []Target) ([][]Diagnostic, error) {
	results := make([][]Diagnostic, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if target.Program == nil {
				return fmt.Errorf("target %d: nil program", i)
			}
			results[i] = l.Lint(target.Program, target.Source, target.Scopes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
