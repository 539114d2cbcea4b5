package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlint-dev/dlint/internal/testutil"
	"github.com/dlint-dev/dlint/pkg/ast"
	"github.com/dlint-dev/dlint/pkg/lint"
	"github.com/dlint-dev/dlint/pkg/scope"
	"github.com/dlint-dev/dlint/pkg/source"
	"github.com/dlint-dev/dlint/pkg/token"
)

// fx builds lint fixtures over literal source text: AST nodes get their
// spans by locating substrings, so snippet and position lookups resolve
// against the real source the same way they would behind a parser.
type fx struct {
	t      *testing.T
	file   *source.File
	scopes *scope.Table
}

func newFx(t *testing.T, src string) *fx {
	t.Helper()
	return &fx{
		t:      t,
		file:   source.NewFile("test.ts", src),
		scopes: scope.NewTable(),
	}
}

// span locates the nth occurrence (1-based) of substr.
func (f *fx) span(substr string, n int) token.Span {
	f.t.Helper()
	sp, ok := f.file.SpanOf(substr, n)
	require.True(f.t, ok, "occurrence %d of %q not found in source", n, substr)
	return sp
}

// between spans from the start of one substring occurrence to the end of
// another.
func (f *fx) between(a string, an int, b string, bn int) token.Span {
	as := f.span(a, an)
	bs := f.span(b, bn)
	return token.NewSpan(f.file.Name(), as.Lo, bs.Hi)
}

func (f *fx) ident(name string, n int) *ast.Ident {
	return &ast.Ident{Span: f.span(name, n), Name: name}
}

// identAt places an identifier at the start of an already-located span,
// for names too short to search for unambiguously.
func (f *fx) identAt(sp token.Span, name string) *ast.Ident {
	return &ast.Ident{Span: token.NewSpan(sp.File, sp.Lo, sp.Lo+len(name)), Name: name}
}

func (f *fx) lit(raw string, kind ast.LiteralKind, n int) *ast.Literal {
	return &ast.Literal{Span: f.span(raw, n), Kind: kind, Raw: raw}
}

func (f *fx) semi(n int) *ast.EmptyStmt {
	return &ast.EmptyStmt{Span: f.span(";", n)}
}

func (f *fx) program(body ...ast.Stmt) *ast.Program {
	return &ast.Program{Span: f.file.Extent(), Body: body}
}

// bindCatch marks the nth occurrence of name as a catch-clause binding
// declared at the declOcc-th occurrence.
func (f *fx) bindCatch(name string, n, declOcc int) {
	f.scopes.Bind(f.span(name, n), scope.Variable{
		Kind: scope.CatchClause,
		Decl: f.span(name, declOcc),
	})
}

// run lints the program with the given rules (all registered rules when
// none are named) and returns the diagnostics.
func (f *fx) run(prog *ast.Program, codes ...string) []lint.Diagnostic {
	f.t.Helper()
	cfg := lint.NewConfig()
	if len(codes) > 0 {
		cfg.Include(codes...)
	}
	l := lint.NewLinter(cfg)
	l.SetLogger(testutil.NewTestLogger(f.t))
	return l.Lint(prog, f.file, f.scopes)
}

// requireAt asserts a diagnostic's code and resolved position
// (1-based line, 0-based column).
func requireAt(t *testing.T, d lint.Diagnostic, code string, line, col int) {
	t.Helper()
	require.Equal(t, code, d.Code)
	require.Equal(t, line, d.Pos.Line, "line")
	require.Equal(t, col, d.Pos.Column, "column")
}
