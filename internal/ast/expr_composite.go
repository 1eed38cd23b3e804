package ast

import "github.com/nanov/jsasta/internal/source"

// ArrayLit is `[e1, e2, ...]`.
type ArrayLit struct {
	base
	Elems []Expr
}

func NewArrayLit(span source.Span, elems []Expr) *ArrayLit {
	return &ArrayLit{base: base{span: span}, Elems: elems}
}
func (n *ArrayLit) Clone() Expr {
	c := *n
	c.Elems = make([]Expr, len(n.Elems))
	for i, e := range n.Elems {
		c.Elems[i] = e.Clone()
	}
	return &c
}

// ObjectField is one `key: value` pair inside an ObjectLit.
type ObjectField struct {
	Name  string
	Value Expr
}

// ObjectLit is `{k1: v1, k2: v2, ...}`.
type ObjectLit struct {
	base
	Fields []ObjectField
}

func NewObjectLit(span source.Span, fields []ObjectField) *ObjectLit {
	return &ObjectLit{base: base{span: span}, Fields: fields}
}
func (n *ObjectLit) Clone() Expr {
	c := *n
	c.Fields = make([]ObjectField, len(n.Fields))
	for i, f := range n.Fields {
		c.Fields[i] = ObjectField{Name: f.Name, Value: f.Value.Clone()}
	}
	return &c
}
