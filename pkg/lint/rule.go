package lint

import (
	"github.com/dlint-dev/dlint/pkg/ast"
)

// TagRecommended marks rules enabled by default.
const TagRecommended = "recommended"

// Rule is the interface all lint rules implement. Rules are stateless and
// reusable across programs; per-program state lives on the traversal stack
// inside Run.
type Rule interface {
	// Code returns the stable kebab-case identifier, e.g. "no-extra-semi".
	Code() string

	// Tags returns the rule's classification tags, e.g. "recommended".
	Tags() []string

	// Description returns a one-line summary of what the rule forbids.
	Description() string

	// Docs returns the full rationale with "### Invalid:" and "### Valid:"
	// example blocks, for documentation generation.
	Docs() string

	// DefaultSeverity returns the severity applied unless overridden.
	DefaultSeverity() Severity

	// Run traverses the program and reports findings through ctx. It must
	// not mutate the program and must examine the whole tree; findings
	// never abort the traversal.
	Run(ctx *Context, program *ast.Program)
}

// RunFunc is a rule's traversal-and-report pass.
type RunFunc func(ctx *Context, program *ast.Program)

// RuleDef is a data-driven rule definition. Rules are stateless - all
// per-program context comes via the Run function parameters.
type RuleDef struct {
	Code        string   // stable identifier, e.g. "no-duplicate-case"
	Tags        []string // classification, e.g. "recommended"
	Description string   // one-line summary
	Docs        string   // rationale with Invalid/Valid example blocks
	Severity    Severity // default severity
	Run         RunFunc  // the traversal pass
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	Code        string   `json:"code"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description"`
	Docs        string   `json:"docs,omitempty"`
	Severity    Severity `json:"default_severity"`
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) RuleInfo {
	return RuleInfo{
		Code:        r.Code(),
		Tags:        r.Tags(),
		Description: r.Description(),
		Docs:        r.Docs(),
		Severity:    r.DefaultSeverity(),
	}
}

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) Code() string              { return w.def.Code }
func (w *wrappedRuleDef) Tags() []string            { return w.def.Tags }
func (w *wrappedRuleDef) Description() string       { return w.def.Description }
func (w *wrappedRuleDef) Docs() string              { return w.def.Docs }
func (w *wrappedRuleDef) DefaultSeverity() Severity { return w.def.Severity }

func (w *wrappedRuleDef) Run(ctx *Context, program *ast.Program) {
	w.def.Run(ctx, program)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
