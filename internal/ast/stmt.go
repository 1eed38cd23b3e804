package ast

import "github.com/nanov/jsasta/internal/source"

// DeclKind distinguishes `var` from `let` bindings. Both produce a
// mutable Var binding (spec.md §3); the distinction is kept only so
// codegen/diagnostics can echo the source keyword back faithfully.
type DeclKind uint8

const (
	DeclVar DeclKind = iota
	DeclLet
)

// VarDecl is a `var name = init;` or `let name = init;` statement.
// BindingType is the binding's final, post-convergence type (spec.md
// §4.2: "a binding's type is the join of its initializer and every
// subsequent assignment in its scope") — internal/mono sets it once
// inference settles, distinct from Init's own InferredType, so codegen
// sizes the stack slot for the widened type rather than the
// initializer's.
type VarDecl struct {
	stmtBase
	Kind        DeclKind
	Name        string
	Init        Expr
	BindingType TypeID
}

func NewVarDecl(span source.Span, kind DeclKind, name string, init Expr) *VarDecl {
	return &VarDecl{stmtBase: stmtBase{span: span}, Kind: kind, Name: name, Init: init}
}
func (n *VarDecl) Clone() Stmt {
	c := *n
	c.Init = n.Init.Clone()
	return &c
}

// ConstDecl is a `const name = init;` statement. Init must be evaluable
// by internal/consteval (spec.md §4.3).
type ConstDecl struct {
	stmtBase
	Name string
	Init Expr
}

func NewConstDecl(span source.Span, name string, init Expr) *ConstDecl {
	return &ConstDecl{stmtBase: stmtBase{span: span}, Name: name, Init: init}
}
func (n *ConstDecl) Clone() Stmt {
	c := *n
	c.Init = n.Init.Clone()
	return &c
}

// Block is `{ stmt; stmt; ... }`, introducing a lexical scope.
type Block struct {
	stmtBase
	Stmts []Stmt
}

func NewBlock(span source.Span, stmts []Stmt) *Block {
	return &Block{stmtBase: stmtBase{span: span}, Stmts: stmts}
}
func (n *Block) Clone() Stmt {
	c := *n
	c.Stmts = make([]Stmt, len(n.Stmts))
	for i, s := range n.Stmts {
		c.Stmts[i] = s.Clone()
	}
	return &c
}

// ExprStmt wraps an expression used in statement position (calls,
// assignments, increments).
type ExprStmt struct {
	stmtBase
	X Expr
}

func NewExprStmt(span source.Span, x Expr) *ExprStmt { return &ExprStmt{stmtBase: stmtBase{span: span}, X: x} }
func (n *ExprStmt) Clone() Stmt {
	c := *n
	c.X = n.X.Clone()
	return &c
}

// If is `if (cond) then else els` (els may be nil).
type If struct {
	stmtBase
	Cond      Expr
	Then, Els Stmt
}

func NewIf(span source.Span, cond Expr, then, els Stmt) *If {
	return &If{stmtBase: stmtBase{span: span}, Cond: cond, Then: then, Els: els}
}
func (n *If) Clone() Stmt {
	c := *n
	c.Cond = n.Cond.Clone()
	c.Then = n.Then.Clone()
	if n.Els != nil {
		c.Els = n.Els.Clone()
	}
	return &c
}

// While is `while (cond) body`.
type While struct {
	stmtBase
	Cond Expr
	Body Stmt
}

func NewWhile(span source.Span, cond Expr, body Stmt) *While {
	return &While{stmtBase: stmtBase{span: span}, Cond: cond, Body: body}
}
func (n *While) Clone() Stmt {
	c := *n
	c.Cond = n.Cond.Clone()
	c.Body = n.Body.Clone()
	return &c
}

// For is `for (init; cond; post) body`; any clause may be nil.
type For struct {
	stmtBase
	Init Stmt
	Cond Expr
	Post Stmt
	Body Stmt
}

func NewFor(span source.Span, init Stmt, cond Expr, post Stmt, body Stmt) *For {
	return &For{stmtBase: stmtBase{span: span}, Init: init, Cond: cond, Post: post, Body: body}
}
func (n *For) Clone() Stmt {
	c := *n
	if n.Init != nil {
		c.Init = n.Init.Clone()
	}
	if n.Cond != nil {
		c.Cond = n.Cond.Clone()
	}
	if n.Post != nil {
		c.Post = n.Post.Clone()
	}
	c.Body = n.Body.Clone()
	return &c
}

// Return is `return expr;` or bare `return;` (Value nil => Void).
type Return struct {
	stmtBase
	Value Expr
}

func NewReturn(span source.Span, value Expr) *Return {
	return &Return{stmtBase: stmtBase{span: span}, Value: value}
}
func (n *Return) Clone() Stmt {
	c := *n
	if n.Value != nil {
		c.Value = n.Value.Clone()
	}
	return &c
}
