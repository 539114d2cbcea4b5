package ast

// Walk traverses a syntax tree depth-first in source order and calls fn for
// each node. If fn returns false, the default descent into that node's
// children is suppressed; rules that need a selective walk return false and
// re-dispatch the children they care about themselves.
func Walk(node Node, fn func(node Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	walkNode(node, fn)
}

func walkStmts(stmts []Stmt, fn func(node Node) bool) {
	for _, s := range stmts {
		if s != nil {
			Walk(s, fn)
		}
	}
}

func walkNode(node Node, fn func(node Node) bool) {
	switch n := node.(type) {
	case *Program:
		if n == nil {
			return
		}
		walkStmts(n.Body, fn)

	case *BlockStmt:
		if n == nil {
			return
		}
		walkStmts(n.Stmts, fn)

	case *ExprStmt:
		if n == nil {
			return
		}
		Walk(n.X, fn)

	case *VarDecl:
		if n == nil {
			return
		}
		for _, d := range n.Decls {
			Walk(d, fn)
		}

	case *VarDeclarator:
		if n == nil {
			return
		}
		Walk(n.Name, fn)
		if n.Init != nil {
			Walk(n.Init, fn)
		}

	case *IfStmt:
		if n == nil {
			return
		}
		Walk(n.Test, fn)
		Walk(n.Cons, fn)
		if n.Alt != nil {
			Walk(n.Alt, fn)
		}

	case *SwitchStmt:
		if n == nil {
			return
		}
		Walk(n.Disc, fn)
		for _, c := range n.Cases {
			Walk(c, fn)
		}

	case *SwitchCase:
		if n == nil {
			return
		}
		if n.Test != nil {
			Walk(n.Test, fn)
		}
		walkStmts(n.Body, fn)

	case *ForStmt:
		if n == nil {
			return
		}
		if n.Init != nil {
			Walk(n.Init, fn)
		}
		if n.Test != nil {
			Walk(n.Test, fn)
		}
		if n.Update != nil {
			Walk(n.Update, fn)
		}
		Walk(n.Body, fn)

	case *ForInStmt:
		if n == nil {
			return
		}
		Walk(n.Left, fn)
		Walk(n.Right, fn)
		Walk(n.Body, fn)

	case *ForOfStmt:
		if n == nil {
			return
		}
		Walk(n.Left, fn)
		Walk(n.Right, fn)
		Walk(n.Body, fn)

	case *WhileStmt:
		if n == nil {
			return
		}
		Walk(n.Test, fn)
		Walk(n.Body, fn)

	case *DoWhileStmt:
		if n == nil {
			return
		}
		Walk(n.Body, fn)
		Walk(n.Test, fn)

	case *WithStmt:
		if n == nil {
			return
		}
		Walk(n.Obj, fn)
		Walk(n.Body, fn)

	case *LabeledStmt:
		if n == nil {
			return
		}
		Walk(n.Label, fn)
		Walk(n.Body, fn)

	case *TryStmt:
		if n == nil {
			return
		}
		Walk(n.Block, fn)
		if n.Handler != nil {
			Walk(n.Handler, fn)
		}
		if n.Finalizer != nil {
			Walk(n.Finalizer, fn)
		}

	case *CatchClause:
		if n == nil {
			return
		}
		if n.Param != nil {
			Walk(n.Param, fn)
		}
		Walk(n.Body, fn)

	case *FuncDecl:
		if n == nil {
			return
		}
		Walk(n.Name, fn)
		for _, p := range n.Params {
			Walk(p, fn)
		}
		Walk(n.Body, fn)

	case *ReturnStmt:
		if n == nil {
			return
		}
		if n.Arg != nil {
			Walk(n.Arg, fn)
		}

	case *BreakStmt:
		if n == nil {
			return
		}
		if n.Label != nil {
			Walk(n.Label, fn)
		}

	case *ContinueStmt:
		if n == nil {
			return
		}
		if n.Label != nil {
			Walk(n.Label, fn)
		}

	case *ThrowStmt:
		if n == nil {
			return
		}
		Walk(n.Arg, fn)

	case *ClassDecl:
		if n == nil {
			return
		}
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.SuperClass != nil {
			Walk(n.SuperClass, fn)
		}
		for _, m := range n.Body {
			Walk(m, fn)
		}

	case *MethodDef:
		if n == nil {
			return
		}
		Walk(n.Key, fn)
		for _, p := range n.Params {
			Walk(p, fn)
		}
		Walk(n.Body, fn)

	case *PropertyDef:
		if n == nil {
			return
		}
		Walk(n.Key, fn)
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *InterfaceDecl:
		if n == nil {
			return
		}
		Walk(n.Name, fn)
		for _, tp := range n.TypeParams {
			Walk(tp, fn)
		}
		for _, h := range n.Extends {
			Walk(h, fn)
		}
		for _, m := range n.Members {
			Walk(m, fn)
		}

	case *Heritage:
		if n == nil {
			return
		}
		Walk(n.Expr, fn)
		for _, a := range n.TypeArgs {
			Walk(a, fn)
		}

	case *PropertySig:
		if n == nil {
			return
		}
		Walk(n.Key, fn)

	case *MethodSig:
		if n == nil {
			return
		}
		Walk(n.Key, fn)

	case *AssignExpr:
		if n == nil {
			return
		}
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *BinaryExpr:
		if n == nil {
			return
		}
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *UnaryExpr:
		if n == nil {
			return
		}
		Walk(n.X, fn)

	case *CallExpr:
		if n == nil {
			return
		}
		Walk(n.Callee, fn)
		for _, a := range n.Args {
			Walk(a, fn)
		}

	case *MemberExpr:
		if n == nil {
			return
		}
		Walk(n.Obj, fn)
		if n.Computed {
			Walk(n.Prop, fn)
		}

	case *ParenExpr:
		if n == nil {
			return
		}
		Walk(n.X, fn)

	case *ArrayLit:
		if n == nil {
			return
		}
		for _, e := range n.Elems {
			if e != nil {
				Walk(e, fn)
			}
		}

	case *ObjectLit:
		if n == nil {
			return
		}
		for _, p := range n.Props {
			Walk(p, fn)
		}

	case *Property:
		if n == nil {
			return
		}
		if n.Computed {
			Walk(n.Key, fn)
		}
		Walk(n.Value, fn)

	case *ArrayPat:
		if n == nil {
			return
		}
		for _, e := range n.Elems {
			if e != nil {
				Walk(e, fn)
			}
		}

	case *ObjectPat:
		if n == nil {
			return
		}
		for _, p := range n.Props {
			Walk(p, fn)
		}

	case *ObjectPatProp:
		if n == nil {
			return
		}
		if n.Rest != nil {
			Walk(n.Rest, fn)
			return
		}
		Walk(n.Key, fn)
		if n.Value != nil {
			Walk(n.Value, fn)
		}
		if n.Init != nil {
			Walk(n.Init, fn)
		}

	case *AssignPat:
		if n == nil {
			return
		}
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *RestPat:
		if n == nil {
			return
		}
		Walk(n.Arg, fn)

	// Leaf nodes - nothing to traverse.
	case *EmptyStmt, *Ident, *Literal, *ThisExpr:
	}
}
