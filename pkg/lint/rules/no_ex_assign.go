package rules

import (
	"github.com/dlint-dev/dlint/pkg/ast"
	"github.com/dlint-dev/dlint/pkg/lint"
	"github.com/dlint-dev/dlint/pkg/scope"
)

func init() {
	lint.Register(NoExAssign)
}

// NoExAssign forbids assigning to a variable bound as an exception-handler
// parameter, including through destructuring patterns.
var NoExAssign = lint.RuleDef{
	Code:        "no-ex-assign",
	Tags:        []string{lint.TagRecommended},
	Description: "Disallows the reassignment of exception parameters",
	Severity:    lint.SeverityError,
	Run:         runNoExAssign,
	Docs: `Disallows the reassignment of exception parameters

There is generally no good reason to reassign an exception parameter. Once
reassigned the code from that point on has no reference to the error anymore.

### Invalid:
` + "```typescript" + `
try {
  someFunc();
} catch (e) {
  e = true;
  // can no longer access the thrown error
}
` + "```" + `

### Valid:
` + "```typescript" + `
try {
  someFunc();
} catch (e) {
  const anotherVar = true;
}
` + "```" + `
`,
}

func runNoExAssign(ctx *lint.Context, program *ast.Program) {
	ast.Walk(program, func(node ast.Node) bool {
		assign, ok := node.(*ast.AssignExpr)
		if !ok {
			return true
		}
		for _, id := range findLHSIdents(assign.Left) {
			v, ok := ctx.Variable(id)
			if !ok || v.Kind != scope.CatchClause {
				continue
			}
			ctx.Report(assign.Span,
				"no-ex-assign",
				"Reassigning exception parameter is not allowed",
				"Use a different variable for the assignment")
			// One diagnostic per assignment expression, even when several
			// catch-bound names appear in the target.
			break
		}
		return true
	})
}
