package llvm

import (
	"fmt"

	"github.com/nanov/jsasta/internal/types"
)

// llvmType renders a TypeID to the textual IR type it lowers to. The
// closed tag set (spec.md §3) has no alias/own/union chains to resolve
// through, so this is a flat switch rather than the teacher's
// resolveAliasAndOwn walk.
func llvmType(interner *types.Interner, id types.TypeID) (string, error) {
	b := interner.Builtins()
	if id == b.Void {
		return "void", nil
	}
	tt := interner.Lookup(id)
	switch tt.Kind {
	case types.KindInt:
		return "i64", nil
	case types.KindDouble:
		return "double", nil
	case types.KindBool:
		return "i1", nil
	case types.KindString, types.KindArray, types.KindObject, types.KindStruct, types.KindFunction:
		return "ptr", nil
	case types.KindVoid:
		return "void", nil
	default:
		return "void", fmt.Errorf("llvm: unsupported type kind %v", tt.Kind)
	}
}
