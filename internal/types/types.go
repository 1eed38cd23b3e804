// Package types implements the value-type lattice of spec.md §3/§4.2: a
// small closed set of tags (Int, Double, Bool, String, Void, Array,
// Object, Struct, Function, Unknown), structural descriptors for the
// composite tags, and the join/promotion rules operators use.
package types

import (
	"fmt"

	"github.com/nanov/jsasta/internal/ast"
)

// TypeID identifies an interned type. It is the same underlying type as
// ast.TypeID so AST nodes can carry one directly without internal/ast
// importing this package (see ast.TypeID's doc comment).
type TypeID = ast.TypeID

// UnknownTypeID is the sentinel every expression starts with.
const UnknownTypeID = ast.UnknownTypeID

// Kind is the coarse value-type tag (spec.md §3).
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInt
	KindDouble
	KindBool
	KindString
	KindVoid
	KindArray
	KindObject
	KindStruct
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindVoid:
		return "void"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindStruct:
		return "struct"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// DynamicSize marks an array whose length is not known at compile time
// (spec.md §4.5: "otherwise heap-allocated and zero-filled").
const DynamicSize = ^uint32(0)

// Field is one entry in an Object/Struct field map (spec.md §3:
// "ordered map of field-name -> (type, default-expr?)").
type Field struct {
	Name    string
	Type    TypeID
	Default ast.Expr // nil if no default
}

// Type is the structural descriptor behind a TypeID.
type Type struct {
	Kind Kind

	// Array
	Elem TypeID
	Size uint32 // DynamicSize if not statically known

	// Object / Struct
	StructName string // "" for anonymous objects
	Fields     []Field

	// Function
	Params   []TypeID
	Return   TypeID
	Variadic bool
}
