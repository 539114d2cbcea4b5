// Package scope models the binding information a host-side scope analyzer
// produces: for each identifier occurrence, what kind of declaration bound
// it and where that declaration lives.
package scope

import (
	"sync"

	"github.com/dlint-dev/dlint/pkg/token"
)

// BindingKind classifies the declaration an identifier resolves to.
type BindingKind int

// Binding kinds.
const (
	Var BindingKind = iota
	Let
	Const
	Function
	Class
	Param
	CatchClause
	Import
	Type
)

// String returns the string representation of the binding kind.
func (k BindingKind) String() string {
	switch k {
	case Var:
		return "var"
	case Let:
		return "let"
	case Const:
		return "const"
	case Function:
		return "function"
	case Class:
		return "class"
	case Param:
		return "param"
	case CatchClause:
		return "catch-clause"
	case Import:
		return "import"
	case Type:
		return "type"
	default:
		return "unknown"
	}
}

// Variable describes the binding an identifier occurrence resolves to.
type Variable struct {
	Kind BindingKind
	Decl token.Span // declaration site
}

// Table is a prepopulated binding table keyed by identifier occurrence
// span. It is read-only after construction and safe to share across
// concurrent lint runs.
type Table struct {
	mu       sync.RWMutex
	bindings map[token.Span]Variable
}

// NewTable creates an empty binding table.
func NewTable() *Table {
	return &Table{bindings: make(map[token.Span]Variable)}
}

// Bind records the binding for an identifier occurrence. Hosts call this
// while populating the table; lint runs only read it.
func (t *Table) Bind(ref token.Span, v Variable) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bindings[ref] = v
}

// Lookup resolves an identifier occurrence to its binding. Unresolved
// occurrences return ok=false.
func (t *Table) Lookup(ref token.Span) (Variable, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.bindings[ref]
	return v, ok
}

// Len returns the number of recorded bindings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.bindings)
}
