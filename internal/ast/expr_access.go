package ast

import "github.com/nanov/jsasta/internal/source"

// Member is `receiver.name` (field or method-like property access).
type Member struct {
	base
	Receiver Expr
	Name     string
}

func NewMember(span source.Span, recv Expr, name string) *Member {
	return &Member{base: base{span: span}, Receiver: recv, Name: name}
}
func (n *Member) Clone() Expr {
	c := *n
	c.Receiver = n.Receiver.Clone()
	return &c
}

// Index is `receiver[index]`.
type Index struct {
	base
	Receiver Expr
	Idx      Expr
}

func NewIndex(span source.Span, recv, idx Expr) *Index {
	return &Index{base: base{span: span}, Receiver: recv, Idx: idx}
}
func (n *Index) Clone() Expr {
	c := *n
	c.Receiver = n.Receiver.Clone()
	c.Idx = n.Idx.Clone()
	return &c
}

// Call is `callee(args...)`. Resolved is filled in by internal/mono once
// the call's argument types are known and a specialization has been
// chosen (spec.md §8 invariant 2: "every call is bound to a unique
// specialization"). It is an opaque uint32 key here to avoid an import
// cycle with internal/mono; internal/mono owns the meaning of the value.
type Call struct {
	base
	Callee   Expr
	Args     []Expr
	Resolved uint32 // index into mono's AllSpecs (0 is a valid index), or mono.ConsoleLogResolved
}

func NewCall(span source.Span, callee Expr, args []Expr) *Call {
	return &Call{base: base{span: span}, Callee: callee, Args: args}
}
func (n *Call) Clone() Expr {
	c := *n
	c.Callee = n.Callee.Clone()
	c.Args = make([]Expr, len(n.Args))
	for i, a := range n.Args {
		c.Args[i] = a.Clone()
	}
	return &c
}

// ArrayNew is the `Array(size)` built-in (spec.md §6), distinct from an
// ordinary call because its argument must be a compile-time constant
// (spec.md §4.3) and it allocates rather than dispatching to user code.
type ArrayNew struct {
	base
	Size Expr
}

func NewArrayNew(span source.Span, size Expr) *ArrayNew {
	return &ArrayNew{base: base{span: span}, Size: size}
}
func (n *ArrayNew) Clone() Expr {
	c := *n
	c.Size = n.Size.Clone()
	return &c
}
