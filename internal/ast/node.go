// Package ast defines the AST shapes spec.md §3 describes: a
// discriminated set of ~30 node kinds, each carrying a source span and,
// after inference, a type slot. Nodes are plain Go pointers in a tree
// (not an index arena) and provide a Clone method, per spec.md §9's
// guidance to "prefer a pure-value AST... with structural clone, not
// aliased graph nodes" so internal/mono can give every specialization
// an independent cloned body.
package ast

import "github.com/nanov/jsasta/internal/source"

// TypeID is an opaque reference to a type descriptor. The zero value
// denotes the Unknown type (spec.md §3: "Unknown appears only during
// inference; a successful compile requires every reachable expression
// to leave it"). The ast package deliberately does not depend on
// internal/types — internal/types aliases this type instead, so struct
// field default expressions (which are ast.Expr) can live in a type
// descriptor without an import cycle.
type TypeID uint32

// UnknownTypeID is the type every node starts with before inference.
const UnknownTypeID TypeID = 0

// Node is implemented by every AST shape.
type Node interface {
	Span() source.Span
}

// Expr is implemented by every expression shape. InferredType/SetType
// expose the post-inference type slot every expression node carries.
type Expr interface {
	Node
	InferredType() TypeID
	SetType(TypeID)
	exprNode()
	Clone() Expr
}

// Stmt is implemented by every statement shape.
type Stmt interface {
	Node
	stmtNode()
	Clone() Stmt
}

// base is embedded by every expression to provide Span/type bookkeeping.
type base struct {
	span source.Span
	typ  TypeID
}

func (b *base) Span() source.Span    { return b.span }
func (b *base) InferredType() TypeID { return b.typ }
func (b *base) SetType(t TypeID)     { b.typ = t }
func (b *base) exprNode()            {}

// stmtBase is embedded by every statement to provide Span bookkeeping.
type stmtBase struct {
	span source.Span
}

func (b *stmtBase) Span() source.Span { return b.span }
func (b *stmtBase) stmtNode()         {}
