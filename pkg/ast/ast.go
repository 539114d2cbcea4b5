// Package ast defines the ECMAScript / TypeScript syntax tree the lint
// engine traverses. The tree is produced by a host-owned parser; every node
// carries the span of the source text it was parsed from. Nodes are
// immutable for the life of a lint run.
package ast

import (
	"github.com/dlint-dev/dlint/pkg/token"
)

// Node is implemented by every syntax tree node.
type Node interface {
	node()
}

// Stmt represents a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// Pat represents a binding or assignment pattern.
type Pat interface {
	Node
	patNode()
}

// ---------- Program ----------

// Program is the root of a parsed source file.
type Program struct {
	Span token.Span
	Body []Stmt
}

func (*Program) node() {}

// ---------- Statements ----------

// BlockStmt is a braced statement list.
type BlockStmt struct {
	Span  token.Span
	Stmts []Stmt
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Span token.Span
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Span token.Span
	X    Expr
}

// VarDeclKind distinguishes var, let and const declarations.
type VarDeclKind string

// Declaration kinds.
const (
	VarKind   VarDeclKind = "var"
	LetKind   VarDeclKind = "let"
	ConstKind VarDeclKind = "const"
)

// VarDecl is a var/let/const declaration statement.
type VarDecl struct {
	Span  token.Span
	Kind  VarDeclKind
	Decls []*VarDeclarator
}

// VarDeclarator is one name-initializer pair in a VarDecl.
type VarDeclarator struct {
	Span token.Span
	Name Pat
	Init Expr // nil when absent
}

func (*VarDeclarator) node() {}

// IfStmt is an if statement with optional else branch.
type IfStmt struct {
	Span token.Span
	Test Expr
	Cons Stmt
	Alt  Stmt // nil when absent
}

// SwitchStmt is a switch statement.
type SwitchStmt struct {
	Span  token.Span
	Disc  Expr
	Cases []*SwitchCase
}

// SwitchCase is one case (or default) clause in a switch.
type SwitchCase struct {
	Span token.Span
	Test Expr // nil for the default clause
	Body []Stmt
}

func (*SwitchCase) node() {}

// ForStmt is a classic three-clause for loop.
type ForStmt struct {
	Span   token.Span
	Init   Node // *VarDecl or Expr; nil when absent
	Test   Expr // nil when absent
	Update Expr // nil when absent
	Body   Stmt
}

// ForInStmt is a for-in loop.
type ForInStmt struct {
	Span  token.Span
	Left  Node // *VarDecl or Pat
	Right Expr
	Body  Stmt
}

// ForOfStmt is a for-of loop.
type ForOfStmt struct {
	Span  token.Span
	Left  Node // *VarDecl or Pat
	Right Expr
	Body  Stmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	Span token.Span
	Test Expr
	Body Stmt
}

// DoWhileStmt is a do-while loop.
type DoWhileStmt struct {
	Span token.Span
	Body Stmt
	Test Expr
}

// WithStmt is a with statement.
type WithStmt struct {
	Span token.Span
	Obj  Expr
	Body Stmt
}

// LabeledStmt is a labeled statement.
type LabeledStmt struct {
	Span  token.Span
	Label *Ident
	Body  Stmt
}

// TryStmt is a try statement with optional handler and finalizer.
type TryStmt struct {
	Span      token.Span
	Block     *BlockStmt
	Handler   *CatchClause // nil when absent
	Finalizer *BlockStmt   // nil when absent
}

// CatchClause is the catch part of a try statement.
type CatchClause struct {
	Span  token.Span
	Param Pat // nil for a bare `catch {}`
	Body  *BlockStmt
}

func (*CatchClause) node() {}

// FuncDecl is a function declaration.
type FuncDecl struct {
	Span   token.Span
	Name   *Ident
	Params []Pat
	Body   *BlockStmt
}

// ReturnStmt is a return statement.
type ReturnStmt struct {
	Span token.Span
	Arg  Expr // nil when absent
}

// BreakStmt is a break statement.
type BreakStmt struct {
	Span  token.Span
	Label *Ident // nil when absent
}

// ContinueStmt is a continue statement.
type ContinueStmt struct {
	Span  token.Span
	Label *Ident // nil when absent
}

// ThrowStmt is a throw statement.
type ThrowStmt struct {
	Span token.Span
	Arg  Expr
}

// ClassDecl is a class declaration. Body members include method and
// property definitions; stray semicolons between members surface as
// EmptyStmt entries.
type ClassDecl struct {
	Span       token.Span
	Name       *Ident
	SuperClass Expr // nil when absent
	Body       []Node
}

// MethodDef is a method definition inside a class body.
type MethodDef struct {
	Span   token.Span
	Key    Expr
	Params []Pat
	Body   *BlockStmt
}

func (*MethodDef) node() {}

// PropertyDef is a property definition inside a class body.
type PropertyDef struct {
	Span  token.Span
	Key   Expr
	Value Expr // nil when absent
}

func (*PropertyDef) node() {}

// InterfaceDecl is a TypeScript interface declaration.
type InterfaceDecl struct {
	Span       token.Span
	Name       *Ident
	TypeParams []*Ident
	Extends    []*Heritage
	Members    []Node
}

// Heritage is one entry in an extends clause, e.g. `Bar` or `Array<T>`.
type Heritage struct {
	Span     token.Span
	Expr     Expr
	TypeArgs []Expr
}

func (*Heritage) node() {}

// PropertySig is a property signature inside an interface body.
type PropertySig struct {
	Span token.Span
	Key  Expr
}

func (*PropertySig) node() {}

// MethodSig is a method signature inside an interface body.
type MethodSig struct {
	Span token.Span
	Key  Expr
}

func (*MethodSig) node() {}

func (*BlockStmt) stmtNode()     {}
func (*EmptyStmt) stmtNode()     {}
func (*ExprStmt) stmtNode()      {}
func (*VarDecl) stmtNode()       {}
func (*IfStmt) stmtNode()        {}
func (*SwitchStmt) stmtNode()    {}
func (*ForStmt) stmtNode()       {}
func (*ForInStmt) stmtNode()     {}
func (*ForOfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()     {}
func (*DoWhileStmt) stmtNode()   {}
func (*WithStmt) stmtNode()      {}
func (*LabeledStmt) stmtNode()   {}
func (*TryStmt) stmtNode()       {}
func (*FuncDecl) stmtNode()      {}
func (*ReturnStmt) stmtNode()    {}
func (*BreakStmt) stmtNode()     {}
func (*ContinueStmt) stmtNode()  {}
func (*ThrowStmt) stmtNode()     {}
func (*ClassDecl) stmtNode()     {}
func (*InterfaceDecl) stmtNode() {}

func (*BlockStmt) node()     {}
func (*EmptyStmt) node()     {}
func (*ExprStmt) node()      {}
func (*VarDecl) node()       {}
func (*IfStmt) node()        {}
func (*SwitchStmt) node()    {}
func (*ForStmt) node()       {}
func (*ForInStmt) node()     {}
func (*ForOfStmt) node()     {}
func (*WhileStmt) node()     {}
func (*DoWhileStmt) node()   {}
func (*WithStmt) node()      {}
func (*LabeledStmt) node()   {}
func (*TryStmt) node()       {}
func (*FuncDecl) node()      {}
func (*ReturnStmt) node()    {}
func (*BreakStmt) node()     {}
func (*ContinueStmt) node()  {}
func (*ThrowStmt) node()     {}
func (*ClassDecl) node()     {}
func (*InterfaceDecl) node() {}

// ---------- Expressions ----------

// Ident is an identifier occurrence. Its span keys scope-map lookups.
type Ident struct {
	Span token.Span
	Name string
}

// LiteralKind distinguishes literal flavors.
type LiteralKind string

// Literal kinds.
const (
	StringLit  LiteralKind = "string"
	NumberLit  LiteralKind = "number"
	BoolLit    LiteralKind = "bool"
	NullLit    LiteralKind = "null"
	RegexpLit  LiteralKind = "regexp"
	BigIntLit  LiteralKind = "bigint"
	UndefLit   LiteralKind = "undefined"
	UnknownLit LiteralKind = ""
)

// Literal is a literal expression. Raw is the exact source text.
type Literal struct {
	Span token.Span
	Kind LiteralKind
	Raw  string
}

// AssignExpr is an assignment expression, including augmented operators
// and destructuring targets.
type AssignExpr struct {
	Span  token.Span
	Op    string // "=", "+=", "&&=", ...
	Left  Node   // Expr or Pat
	Right Expr
}

// BinaryExpr is a binary operator expression.
type BinaryExpr struct {
	Span  token.Span
	Op    string
	Left  Expr
	Right Expr
}

// UnaryExpr is a prefix unary operator expression.
type UnaryExpr struct {
	Span token.Span
	Op   string
	X    Expr
}

// CallExpr is a function call.
type CallExpr struct {
	Span   token.Span
	Callee Expr
	Args   []Expr
}

// MemberExpr is a property access, `o.p` or `o[e]`.
type MemberExpr struct {
	Span     token.Span
	Obj      Expr
	Prop     Expr
	Computed bool
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Span token.Span
	X    Expr
}

// ThisExpr is the `this` expression.
type ThisExpr struct {
	Span token.Span
}

// ArrayLit is an array literal.
type ArrayLit struct {
	Span  token.Span
	Elems []Expr // nil entries are holes
}

// ObjectLit is an object literal.
type ObjectLit struct {
	Span  token.Span
	Props []*Property
}

// Property is a key-value pair in an object literal.
type Property struct {
	Span     token.Span
	Key      Expr
	Value    Expr
	Computed bool
}

func (*Property) node() {}

func (*Ident) exprNode()      {}
func (*Literal) exprNode()    {}
func (*AssignExpr) exprNode() {}
func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}
func (*CallExpr) exprNode()   {}
func (*MemberExpr) exprNode() {}
func (*ParenExpr) exprNode()  {}
func (*ThisExpr) exprNode()   {}
func (*ArrayLit) exprNode()   {}
func (*ObjectLit) exprNode()  {}

func (*Ident) node()      {}
func (*Literal) node()    {}
func (*AssignExpr) node() {}
func (*BinaryExpr) node() {}
func (*UnaryExpr) node()  {}
func (*CallExpr) node()   {}
func (*MemberExpr) node() {}
func (*ParenExpr) node()  {}
func (*ThisExpr) node()   {}
func (*ArrayLit) node()   {}
func (*ObjectLit) node()  {}

// ---------- Patterns ----------

// ArrayPat is an array destructuring pattern, `[a, b, ...rest]`.
type ArrayPat struct {
	Span  token.Span
	Elems []Pat // nil entries are holes
}

// ObjectPat is an object destructuring pattern, `{a, b: c, ...rest}`.
type ObjectPat struct {
	Span  token.Span
	Props []*ObjectPatProp
}

// ObjectPatProp is one property in an object pattern. Shorthand props have
// Value nil and the bound name in Key. Rest props have Rest set.
type ObjectPatProp struct {
	Span  token.Span
	Key   Expr
	Value Pat  // nil for shorthand `{x}`
	Rest  Pat  // non-nil for `{...rest}`
	Init  Expr // default for shorthand-with-default `{x = 1}`
}

func (*ObjectPatProp) node() {}

// AssignPat is a default-value pattern, `p = expr`.
type AssignPat struct {
	Span  token.Span
	Left  Pat
	Right Expr
}

// RestPat is a rest pattern, `...p`.
type RestPat struct {
	Span token.Span
	Arg  Pat
}

func (*Ident) patNode()     {}
func (*ArrayPat) patNode()  {}
func (*ObjectPat) patNode() {}
func (*AssignPat) patNode() {}
func (*RestPat) patNode()   {}

func (*ArrayPat) node()  {}
func (*ObjectPat) node() {}
func (*AssignPat) node() {}
func (*RestPat) node()   {}
