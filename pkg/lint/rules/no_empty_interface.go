package rules

import (
	"github.com/dlint-dev/dlint/pkg/ast"
	"github.com/dlint-dev/dlint/pkg/lint"
)

func init() {
	lint.Register(NoEmptyInterface)
}

// NoEmptyInterface forbids interface declarations with no body members
// when they extend at most one supertype. An interface extending two or
// more supertypes is an ad-hoc union of their shapes and stays legal even
// with an empty body.
var NoEmptyInterface = lint.RuleDef{
	Code:        "no-empty-interface",
	Tags:        []string{lint.TagRecommended},
	Description: "Disallows the declaration of an empty interface",
	Severity:    lint.SeverityError,
	Run:         runNoEmptyInterface,
	Docs: `Disallows the declaration of an empty interface

An interface with no members serves no purpose. Either the interface extends
another interface, in which case the supertype can be used, or it does not
extend a supertype in which case it is the equivalent to an empty object. This
rule will capture these situations as either unnecessary code or a mistaken
empty implementation.

### Invalid:
` + "```typescript" + `
interface Foo {}
interface Foo extends Bar {}
` + "```" + `

### Valid:
` + "```typescript" + `
interface Foo {
  name: string;
}

interface Bar {
  age: number;
}

// Using an empty interface as a union type is allowed
interface Baz extends Foo, Bar {}
` + "```" + `
`,
}

func runNoEmptyInterface(ctx *lint.Context, program *ast.Program) {
	ast.Walk(program, func(node ast.Node) bool {
		decl, ok := node.(*ast.InterfaceDecl)
		if !ok {
			return true
		}
		// Type parameters are no exemption: an empty generic interface is
		// still flagged.
		if len(decl.Extends) > 1 || len(decl.Members) > 0 {
			return true
		}
		if len(decl.Extends) == 0 {
			ctx.Report(decl.Span,
				"no-empty-interface",
				"An empty interface is equivalent to `{}`.",
				"Remove this interface or add members to this interface.")
		} else {
			ctx.Report(decl.Span,
				"no-empty-interface",
				"An interface declaring no members is equivalent to its supertype.",
				"Use the supertype instead, or add members to this interface.")
		}
		return true
	})
}
