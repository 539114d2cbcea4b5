package ast

import "github.com/dlint-dev/dlint/pkg/token"

// SpanOf returns the source span of any node.
func SpanOf(node Node) token.Span {
	switch n := node.(type) {
	case *Program:
		return n.Span
	case *BlockStmt:
		return n.Span
	case *EmptyStmt:
		return n.Span
	case *ExprStmt:
		return n.Span
	case *VarDecl:
		return n.Span
	case *VarDeclarator:
		return n.Span
	case *IfStmt:
		return n.Span
	case *SwitchStmt:
		return n.Span
	case *SwitchCase:
		return n.Span
	case *ForStmt:
		return n.Span
	case *ForInStmt:
		return n.Span
	case *ForOfStmt:
		return n.Span
	case *WhileStmt:
		return n.Span
	case *DoWhileStmt:
		return n.Span
	case *WithStmt:
		return n.Span
	case *LabeledStmt:
		return n.Span
	case *TryStmt:
		return n.Span
	case *CatchClause:
		return n.Span
	case *FuncDecl:
		return n.Span
	case *ReturnStmt:
		return n.Span
	case *BreakStmt:
		return n.Span
	case *ContinueStmt:
		return n.Span
	case *ThrowStmt:
		return n.Span
	case *ClassDecl:
		return n.Span
	case *MethodDef:
		return n.Span
	case *PropertyDef:
		return n.Span
	case *InterfaceDecl:
		return n.Span
	case *Heritage:
		return n.Span
	case *PropertySig:
		return n.Span
	case *MethodSig:
		return n.Span
	case *Ident:
		return n.Span
	case *Literal:
		return n.Span
	case *AssignExpr:
		return n.Span
	case *BinaryExpr:
		return n.Span
	case *UnaryExpr:
		return n.Span
	case *CallExpr:
		return n.Span
	case *MemberExpr:
		return n.Span
	case *ParenExpr:
		return n.Span
	case *ThisExpr:
		return n.Span
	case *ArrayLit:
		return n.Span
	case *ObjectLit:
		return n.Span
	case *Property:
		return n.Span
	case *ArrayPat:
		return n.Span
	case *ObjectPat:
		return n.Span
	case *ObjectPatProp:
		return n.Span
	case *AssignPat:
		return n.Span
	case *RestPat:
		return n.Span
	}
	return token.Span{}
}
