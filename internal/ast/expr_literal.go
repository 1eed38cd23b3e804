package ast

import "github.com/nanov/jsasta/internal/source"

// IntLit is an integer literal, e.g. 42.
type IntLit struct {
	base
	Value int32
}

func NewIntLit(span source.Span, v int32) *IntLit { return &IntLit{base: base{span: span}, Value: v} }
func (n *IntLit) Clone() Expr                      { c := *n; return &c }

// DoubleLit is a floating-point literal, e.g. 3.14.
type DoubleLit struct {
	base
	Value float64
}

func NewDoubleLit(span source.Span, v float64) *DoubleLit {
	return &DoubleLit{base: base{span: span}, Value: v}
}
func (n *DoubleLit) Clone() Expr { c := *n; return &c }

// StringLit is a string literal.
type StringLit struct {
	base
	Value string
}

func NewStringLit(span source.Span, v string) *StringLit {
	return &StringLit{base: base{span: span}, Value: v}
}
func (n *StringLit) Clone() Expr { c := *n; return &c }

// BoolLit is a boolean literal.
type BoolLit struct {
	base
	Value bool
}

func NewBoolLit(span source.Span, v bool) *BoolLit { return &BoolLit{base: base{span: span}, Value: v} }
func (n *BoolLit) Clone() Expr                      { c := *n; return &c }

// Ident references a binding by name.
type Ident struct {
	base
	Name string
}

func NewIdent(span source.Span, name string) *Ident { return &Ident{base: base{span: span}, Name: name} }
func (n *Ident) Clone() Expr                         { c := *n; return &c }
