// Package lint provides the core linting engine: the rule contract, the
// rule registry, and the per-program context rules use to resolve source
// snippets, query bindings, and report diagnostics.
//
// The engine does not parse source or analyze scopes. A host hands it a
// parsed program together with a SpanResolver and a ScopeMap, selects a
// rule set by code or tag, and drains the resulting diagnostics.
package lint

import (
	"github.com/dlint-dev/dlint/pkg/scope"
	"github.com/dlint-dev/dlint/pkg/token"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a critical issue that should be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name.
func ParseSeverity(name string) (Severity, bool) {
	switch name {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityError, false
	}
}

// Diagnostic represents a lint finding.
type Diagnostic struct {
	Code     string         `json:"code"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
	Hint     string         `json:"hint,omitempty"`
	Span     token.Span     `json:"span"`
	Pos      token.Position `json:"pos"` // resolved start of Span
}

// SpanResolver maps spans back to the original source. Implemented by
// source.File; hosts with their own source management provide their own.
// Resolvers are read-only and may be shared across concurrent lint runs.
type SpanResolver interface {
	// Snippet returns the exact original substring for a span. A span
	// outside the program is a programming error and yields an error.
	Snippet(span token.Span) (string, error)

	// Position maps a byte offset to its line/column position.
	Position(offset int) token.Position
}

// ScopeMap resolves identifier occurrences to their bindings. Implemented
// by scope.Table. Unresolved occurrences return ok=false; that is never an
// error.
type ScopeMap interface {
	Lookup(ref token.Span) (scope.Variable, bool)
}
