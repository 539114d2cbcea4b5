package rules

import (
	"github.com/dlint-dev/dlint/pkg/ast"
	"github.com/dlint-dev/dlint/pkg/lint"
)

func init() {
	lint.Register(NoDuplicateCase)
}

// NoDuplicateCase forbids two case clauses in one switch whose test
// expressions have identical source text.
var NoDuplicateCase = lint.RuleDef{
	Code:        "no-duplicate-case",
	Tags:        []string{lint.TagRecommended},
	Description: "Disallows using the same case clause in a switch statement more than once",
	Severity:    lint.SeverityError,
	Run:         runNoDuplicateCase,
	Docs: `Disallows using the same case clause in a switch statement more than once

When you reuse a case test expression in a ` + "`switch`" + ` statement, the duplicate case will
never be reached meaning this is almost always a bug.

### Invalid:
` + "```typescript" + `
const someText = "a";
switch (someText) {
  case "a":
    break;
  case "b":
    break;
  case "a": // duplicate test expression
    break;
  default:
    break;
}
` + "```" + `

### Valid:
` + "```typescript" + `
const someText = "a";
switch (someText) {
  case "a":
    break;
  case "b":
    break;
  case "c":
    break;
  default:
    break;
}
` + "```" + `
`,
}

func runNoDuplicateCase(ctx *lint.Context, program *ast.Program) {
	ast.Walk(program, func(node ast.Node) bool {
		sw, ok := node.(*ast.SwitchStmt)
		if !ok {
			return true
		}

		// Like ESLint: compare the exact source text of the case tests.
		// The seen set is scoped to this switch; nested switches get their
		// own when the walk reaches them.
		seen := make(map[string]bool)
		for _, c := range sw.Cases {
			if c.Test == nil {
				continue
			}
			span := ast.SpanOf(c.Test)
			text, err := ctx.Snippet(span)
			if err != nil {
				continue
			}
			if seen[text] {
				ctx.Report(span,
					"no-duplicate-case",
					"Duplicate values in `case` are not allowed",
					"Remove or rename the duplicate case clause")
				continue
			}
			seen[text] = true
		}
		return true
	})
}
