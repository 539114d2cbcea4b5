package rules

import (
	"github.com/dlint-dev/dlint/pkg/ast"
	"github.com/dlint-dev/dlint/pkg/lint"
)

func init() {
	lint.Register(NoExtraSemi)
}

// NoExtraSemi forbids empty statements except where the grammar requires a
// statement: the single body of a loop, if, with, or label. There the
// semicolon is the author's explicit "no body" and stays silent.
var NoExtraSemi = lint.RuleDef{
	Code:        "no-extra-semi",
	Tags:        []string{lint.TagRecommended},
	Description: "Disallows the use of unnecessary semi-colons",
	Severity:    lint.SeverityError,
	Run:         runNoExtraSemi,
	Docs: `Disallows the use of unnecessary semi-colons

Extra (and unnecessary) semi-colons can cause confusion when reading the code as
well as making the code less clean.

### Invalid:
` + "```typescript" + `
const x = 5;;

function foo() {};
` + "```" + `

### Valid:
` + "```typescript" + `
const x = 5;

function foo() {}
` + "```" + `
`,
}

func isEmptyStmt(s ast.Stmt) bool {
	_, ok := s.(*ast.EmptyStmt)
	return ok
}

// runNoExtraSemi reports every empty statement the walk visits. For each
// body-bearing construct whose body is a lone empty statement, the walk is
// re-dispatched manually: non-body children are still visited, the body is
// not. Class bodies get the default walk, so stray semicolons between
// members are reported.
func runNoExtraSemi(ctx *lint.Context, program *ast.Program) {
	var visit func(node ast.Node) bool
	visit = func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.EmptyStmt:
			ctx.Report(n.Span,
				"no-extra-semi",
				"Unnecessary semicolon.",
				"Remove the extra (and unnecessary) semi-colon")

		case *ast.ForStmt:
			if isEmptyStmt(n.Body) {
				if n.Init != nil {
					ast.Walk(n.Init, visit)
				}
				if n.Test != nil {
					ast.Walk(n.Test, visit)
				}
				if n.Update != nil {
					ast.Walk(n.Update, visit)
				}
				return false
			}

		case *ast.WhileStmt:
			if isEmptyStmt(n.Body) {
				ast.Walk(n.Test, visit)
				return false
			}

		case *ast.DoWhileStmt:
			if isEmptyStmt(n.Body) {
				ast.Walk(n.Test, visit)
				return false
			}

		case *ast.WithStmt:
			if isEmptyStmt(n.Body) {
				ast.Walk(n.Obj, visit)
				return false
			}

		case *ast.ForOfStmt:
			if isEmptyStmt(n.Body) {
				ast.Walk(n.Left, visit)
				ast.Walk(n.Right, visit)
				return false
			}

		case *ast.ForInStmt:
			if isEmptyStmt(n.Body) {
				ast.Walk(n.Left, visit)
				ast.Walk(n.Right, visit)
				return false
			}

		case *ast.IfStmt:
			ast.Walk(n.Test, visit)
			if !isEmptyStmt(n.Cons) {
				ast.Walk(n.Cons, visit)
			}
			if n.Alt != nil && !isEmptyStmt(n.Alt) {
				ast.Walk(n.Alt, visit)
			}
			return false

		case *ast.LabeledStmt:
			ast.Walk(n.Label, visit)
			if !isEmptyStmt(n.Body) {
				ast.Walk(n.Body, visit)
			}
			return false
		}
		return true
	}
	ast.Walk(program, visit)
}
