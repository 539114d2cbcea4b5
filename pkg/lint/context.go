package lint

import (
	"github.com/dlint-dev/dlint/pkg/ast"
	"github.com/dlint-dev/dlint/pkg/scope"
	"github.com/dlint-dev/dlint/pkg/token"
)

// Context bundles the capabilities rules use during one lint pass over one
// program: the span resolver, the scope map, and the owned diagnostic
// accumulator. The resolver and scope map are borrowed from the host and
// only read; the context itself lives for exactly one pass and is then
// discarded.
type Context struct {
	program *ast.Program
	src     SpanResolver
	scopes  ScopeMap
	diags   []Diagnostic
}

// NewContext creates a context for one lint pass. scopes may be nil when
// the host performed no scope analysis; Variable then resolves nothing.
func NewContext(program *ast.Program, src SpanResolver, scopes ScopeMap) *Context {
	return &Context{
		program: program,
		src:     src,
		scopes:  scopes,
	}
}

// Program returns the program under lint.
func (c *Context) Program() *ast.Program {
	return c.program
}

// Snippet returns the exact original source substring for span. An error
// indicates a span outside the program, which is a programming error on
// the caller's side, never a lint finding.
func (c *Context) Snippet(span token.Span) (string, error) {
	return c.src.Snippet(span)
}

// Position maps a byte offset to its line/column position.
func (c *Context) Position(offset int) token.Position {
	return c.src.Position(offset)
}

// Variable resolves an identifier occurrence to its binding. Unresolved
// identifiers return ok=false.
func (c *Context) Variable(id *ast.Ident) (scope.Variable, bool) {
	if id == nil || c.scopes == nil {
		return scope.Variable{}, false
	}
	return c.scopes.Lookup(id.Span)
}

// Report appends a diagnostic at span. Diagnostics keep the order they are
// reported in and are never deduplicated.
func (c *Context) Report(span token.Span, code, message, hint string) {
	c.diags = append(c.diags, Diagnostic{
		Code:    code,
		Message: message,
		Hint:    hint,
		Span:    span,
		Pos:     c.src.Position(span.Lo),
	})
}

// Diagnostics returns the accumulated diagnostics in report order.
func (c *Context) Diagnostics() []Diagnostic {
	return c.diags
}
