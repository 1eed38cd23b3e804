// Package symbols implements C5: lexically scoped name resolution.
// Each scope maps a name to one of five binding variants (spec.md §3);
// lookup walks outward through enclosing scopes, and a duplicate
// definition within the same scope is an error while shadowing across
// scopes is permitted.
package symbols

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/types"
)

// Kind discriminates which variant a Binding holds.
type Kind uint8

const (
	KindVar Kind = iota
	KindConst
	KindFunc
	KindStruct
	KindImport
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindConst:
		return "const"
	case KindFunc:
		return "func"
	case KindStruct:
		return "struct"
	case KindImport:
		return "import"
	default:
		return "invalid"
	}
}

// Binding is one name's meaning within a scope. Exactly the fields for
// its Kind are meaningful; the rest are zero.
//
// Func intentionally does not carry a specialization set, unlike
// spec.md §3's `Func {decl_node, specializations}` sketch: keeping
// specializations here would make this package import internal/mono,
// which owns the inverse relationship (it needs ast.FunctionDecl and a
// symbol table to discover calls). internal/mono keeps its own
// registry keyed by (qualified name, []TypeID) instead; Binding.Decl is
// enough for it to find the template to clone.
type Binding struct {
	Name string
	Kind Kind

	// KindVar
	Mutable bool
	Type    types.TypeID // Var/Const/Struct-instance type; KindFunc uses Type for its Function() signature once known

	// KindConst
	ConstValue ConstValue

	// KindFunc
	Decl *ast.FunctionDecl

	// KindVar, only when the binding originates from a function-local
	// var/let declaration (parameters leave this nil): the declaration
	// node a later widening assignment writes its joined type back onto,
	// so codegen can read the binding's final type off the AST.
	VarDecl *ast.VarDecl

	// KindStruct
	StructType types.TypeID

	// KindImport
	OriginModule string
	OriginName   string
}

// ConstValue mirrors consteval.Value's shape without importing
// internal/consteval, which would otherwise need to import symbols for
// its Env bridge (internal/mono owns that bridge instead).
type ConstValue struct {
	Kind types.Kind
	I    int32
	F    float64
	S    string
	B    bool
}

// NewVar builds a Var binding with no declaring node — used for
// function parameters, which have no ast.VarDecl for a widening
// assignment to write back onto.
func NewVar(name string, mutable bool, t types.TypeID) Binding {
	return Binding{Name: name, Kind: KindVar, Mutable: mutable, Type: t}
}

// NewLocalVar builds a Var binding for a function-local var/let
// declaration, recording decl so internal/mono's typeAssign can
// propagate a widened join back onto the declaration for codegen.
func NewLocalVar(name string, t types.TypeID, decl *ast.VarDecl) Binding {
	return Binding{Name: name, Kind: KindVar, Mutable: true, Type: t, VarDecl: decl}
}

// NewConst builds a Const binding.
func NewConst(name string, v ConstValue, t types.TypeID) Binding {
	return Binding{Name: name, Kind: KindConst, ConstValue: v, Type: t}
}

// NewFunc builds a Func binding.
func NewFunc(name string, decl *ast.FunctionDecl) Binding {
	return Binding{Name: name, Kind: KindFunc, Decl: decl}
}

// NewStruct builds a Struct binding.
func NewStruct(name string, t types.TypeID) Binding {
	return Binding{Name: name, Kind: KindStruct, StructType: t}
}

// NewImport builds an Import binding.
func NewImport(localName, originModule, originName string) Binding {
	return Binding{Name: localName, Kind: KindImport, OriginModule: originModule, OriginName: originName}
}
