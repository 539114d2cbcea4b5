package rules

import (
	"github.com/dlint-dev/dlint/pkg/ast"
)

// findLHSIdents returns the identifiers an assignment target actually
// writes, in source order. Member accesses and `this` reseat a property,
// not an identifier, so they contribute nothing; default-value expressions
// are reads, not writes. The function knows nothing about bindings.
func findLHSIdents(target ast.Node) []*ast.Ident {
	var ids []*ast.Ident
	collectLHSIdents(&ids, target)
	return ids
}

func collectLHSIdents(ids *[]*ast.Ident, target ast.Node) {
	switch t := target.(type) {
	case *ast.Ident:
		*ids = append(*ids, t)

	case *ast.ParenExpr:
		collectLHSIdents(ids, t.X)

	case *ast.ArrayPat:
		for _, elem := range t.Elems {
			if elem != nil {
				collectLHSIdents(ids, elem)
			}
		}

	case *ast.ObjectPat:
		for _, prop := range t.Props {
			switch {
			case prop.Rest != nil:
				collectLHSIdents(ids, prop.Rest)
			case prop.Value != nil:
				collectLHSIdents(ids, prop.Value)
			default:
				// Shorthand `{x}` or `{x = 1}` binds the key itself.
				if key, ok := prop.Key.(*ast.Ident); ok {
					*ids = append(*ids, key)
				}
			}
		}

	case *ast.AssignPat:
		collectLHSIdents(ids, t.Left)

	case *ast.RestPat:
		collectLHSIdents(ids, t.Arg)

		// *ast.MemberExpr, *ast.ThisExpr and non-identifier leaves write
		// no identifier.
	}
}
