package ast

import "github.com/nanov/jsasta/internal/source"

// FunctionDecl is `function name(p1, p2, ...) { body }`. Source
// parameters carry no type annotation (spec.md §1: "untyped at
// declaration") — internal/mono clones Body once per discovered
// parameter-type tuple.
type FunctionDecl struct {
	stmtBase
	Name   string
	Params []string
	Body   *Block
}

func NewFunctionDecl(span source.Span, name string, params []string, body *Block) *FunctionDecl {
	return &FunctionDecl{stmtBase: stmtBase{span: span}, Name: name, Params: params, Body: body}
}
func (n *FunctionDecl) Clone() Stmt {
	c := *n
	c.Params = append([]string(nil), n.Params...)
	c.Body = n.Body.Clone().(*Block)
	return &c
}

// FieldDecl is one struct field, with an optional compile-time-constant
// default expression (spec.md §3/§4.3).
type FieldDecl struct {
	Name    string
	Default Expr // nil if no default
}

// StructDecl is `struct Name { field1, field2: default, ... }`.
type StructDecl struct {
	stmtBase
	Name   string
	Fields []FieldDecl
}

func NewStructDecl(span source.Span, name string, fields []FieldDecl) *StructDecl {
	return &StructDecl{stmtBase: stmtBase{span: span}, Name: name, Fields: fields}
}
func (n *StructDecl) Clone() Stmt {
	c := *n
	c.Fields = append([]FieldDecl(nil), n.Fields...)
	return &c
}

// ImportDecl is `import "path";` — resolved relative to the importing
// file's directory, or verbatim if absolute (spec.md §6).
type ImportDecl struct {
	stmtBase
	Path string
}

func NewImportDecl(span source.Span, path string) *ImportDecl {
	return &ImportDecl{stmtBase: stmtBase{span: span}, Path: path}
}
func (n *ImportDecl) Clone() Stmt { c := *n; return &c }
