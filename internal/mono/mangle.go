package mono

import (
	"strings"

	"github.com/nanov/jsasta/internal/types"
)

// mangle builds the deterministic, collision-free specialization symbol
// spec.md §4.4 describes: `f_<suffix1>[_<suffix2>...]`, where f is the
// function's qualified name sanitized into a valid symbol (module path
// separators become underscores, so two modules each declaring `add`
// still mangle to distinct symbols — spec.md §8 invariant 3 requires
// mangled names be a deterministic function of the full qualified name,
// not just the bare source identifier).
func mangle(qualifiedName string, params []types.TypeID, in *types.Interner) string {
	var b strings.Builder
	b.WriteString(sanitizeSymbol(qualifiedName))
	for _, t := range params {
		b.WriteByte('_')
		b.WriteString(suffixFor(t, in))
	}
	return b.String()
}

func sanitizeSymbol(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// suffixFor renders one type's mangling suffix: int|double|str|bool|
// object<hash>|array<elem> (spec.md §4.4).
func suffixFor(t types.TypeID, in *types.Interner) string {
	info := in.Lookup(t)
	switch info.Kind {
	case types.KindInt:
		return "int"
	case types.KindDouble:
		return "double"
	case types.KindString:
		return "str"
	case types.KindBool:
		return "bool"
	case types.KindVoid:
		return "void"
	case types.KindArray:
		return "array" + suffixFor(info.Elem, in)
	case types.KindObject:
		return "object" + fieldsSuffix(info.Fields, in)
	case types.KindStruct:
		return "struct_" + sanitizeSymbol(info.StructName)
	case types.KindFunction:
		return "fn"
	default:
		return "unknown"
	}
}

// fieldsSuffix encodes an object's sorted field names and suffixes
// directly into the mangled suffix (the Interner already sorts Object
// fields by name, so this is stable regardless of literal field-write
// order at the call site). Encoding the tuple instead of hashing it
// keeps mangling provably injective: two structurally different field
// lists always render to different suffixes, where a hash could collide
// (spec.md §8 invariant 3, §9's round-trip injectivity property).
func fieldsSuffix(fields []types.Field, in *types.Interner) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteByte('_')
		b.WriteString(sanitizeSymbol(f.Name))
		b.WriteByte('_')
		b.WriteString(suffixFor(f.Type, in))
	}
	return b.String()
}
