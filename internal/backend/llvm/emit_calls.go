package llvm

import (
	"fmt"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/mono"
	"github.com/nanov/jsasta/internal/types"
)

// emitCall lowers a resolved call: either the variadic console.log
// builtin (one runtime call per argument, dispatched on its static
// type) or a direct call to the argument tuple's chosen specialization
// (spec.md §4.5 — Call.Resolved already names which one at this
// point, set during C8).
func (fe *funcEmitter) emitCall(n *ast.Call, scope *codegenScope) (string, string) {
	if n.Resolved == mono.ConsoleLogResolved {
		for _, a := range n.Args {
			ty, v := fe.emitExpr(a, scope)
			switch ty {
			case "i64":
				fe.emitf("  call void @jsa_console_log_int(i64 %s)\n", v)
			case "double":
				fe.emitf("  call void @jsa_console_log_double(double %s)\n", v)
			case "i1":
				fe.emitf("  call void @jsa_console_log_bool(i1 %s)\n", v)
			default:
				fe.emitf("  call void @jsa_console_log_string(ptr %s)\n", v)
			}
		}
		return "void", "undef"
	}

	spec := fe.e.prog.AllSpecs[n.Resolved]
	argVals := make([]string, len(n.Args))
	for i, a := range n.Args {
		ty, v := fe.emitExpr(a, scope)
		argVals[i] = fmt.Sprintf("%s %s", ty, v)
	}
	retTy, _ := llvmType(fe.e.types, spec.ReturnType)
	if retTy == "void" {
		fe.emitf("  call void @%s(%s)\n", spec.MangledName, join(argVals))
		return "void", "undef"
	}
	tmp := fe.nextTemp()
	fe.emitf("  %s = call %s @%s(%s)\n", tmp, retTy, spec.MangledName, join(argVals))
	return retTy, tmp
}

func join(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

// emitMember reads a field by name out of an Object/Struct value. Field
// order is fixed at intern time (internal/types.Interner.Object sorts
// by name), so the field's index doubles as its storage slot: the
// runtime boxes every field as i64 (bitcast for double, ptrtoint for
// ptr, zext for bool) the way jsa_object_new lays the struct out.
func (fe *funcEmitter) emitMember(n *ast.Member, scope *codegenScope) (string, string) {
	rty, recv := fe.emitExpr(n.Receiver, scope)
	_ = rty
	info := fe.e.types.Lookup(n.Receiver.InferredType())
	idx := fieldIndex(info.Fields, n.Name)

	raw := fe.nextTemp()
	fe.emitf("  %s = call i64 @jsa_object_get(ptr %s, i64 %d)\n", raw, recv, idx)
	ty, _ := llvmType(fe.e.types, n.InferredType())
	return ty, fe.unboxI64(raw, ty)
}

func fieldIndex(fields []types.Field, name string) int {
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// unboxI64 converts the runtime's flat i64 field representation back to
// its static type.
func (fe *funcEmitter) unboxI64(raw, ty string) string {
	switch ty {
	case "i64":
		return raw
	case "double":
		tmp := fe.nextTemp()
		fe.emitf("  %s = bitcast i64 %s to double\n", tmp, raw)
		return tmp
	case "i1":
		tmp := fe.nextTemp()
		fe.emitf("  %s = trunc i64 %s to i1\n", tmp, raw)
		return tmp
	case "ptr":
		tmp := fe.nextTemp()
		fe.emitf("  %s = inttoptr i64 %s to ptr\n", tmp, raw)
		return tmp
	default:
		return raw
	}
}

// boxI64 is unboxI64's inverse, used when storing a value into an
// Object/Struct/Array slot.
func (fe *funcEmitter) boxI64(ty, val string) string {
	switch ty {
	case "i64":
		return val
	case "double":
		tmp := fe.nextTemp()
		fe.emitf("  %s = bitcast double %s to i64\n", tmp, val)
		return tmp
	case "i1":
		tmp := fe.nextTemp()
		fe.emitf("  %s = zext i1 %s to i64\n", tmp, val)
		return tmp
	case "ptr":
		tmp := fe.nextTemp()
		fe.emitf("  %s = ptrtoint ptr %s to i64\n", tmp, val)
		return tmp
	default:
		return val
	}
}

// emitIndex reads an Array or String element (spec.md §4.2: indexing
// requires an Int index).
func (fe *funcEmitter) emitIndex(n *ast.Index, scope *codegenScope) (string, string) {
	_, recv := fe.emitExpr(n.Receiver, scope)
	_, idx := fe.emitExpr(n.Idx, scope)

	if fe.kind(n.Receiver) == types.KindString {
		tmp := fe.nextTemp()
		fe.emitf("  %s = call ptr @jsa_string_index(ptr %s, i64 %s)\n", tmp, recv, idx)
		return "ptr", tmp
	}

	raw := fe.nextTemp()
	fe.emitf("  %s = call i64 @jsa_object_get(ptr %s, i64 %s)\n", raw, recv, idx)
	ty, _ := llvmType(fe.e.types, n.InferredType())
	return ty, fe.unboxI64(raw, ty)
}

// emitStoreToLvalue lowers an assignment whose target is a Member or
// Index expression (string index-write copies-on-write per spec.md
// §4.5, everything else stores through jsa_object_set_field).
func (fe *funcEmitter) emitStoreToLvalue(target ast.Expr, val string, scope *codegenScope) (string, string) {
	switch t := target.(type) {
	case *ast.Member:
		_, recv := fe.emitExpr(t.Receiver, scope)
		info := fe.e.types.Lookup(t.Receiver.InferredType())
		idx := fieldIndex(info.Fields, t.Name)
		ty, _ := llvmType(fe.e.types, t.InferredType())
		boxed := fe.boxI64(ty, val)
		fe.emitf("  call void @jsa_object_set_field(ptr %s, i64 %d, i64 %s)\n", recv, idx, boxed)
		return ty, val
	case *ast.Index:
		if fe.kind(t.Receiver) == types.KindString {
			return fe.emitStringIndexSet(t, val, scope)
		}
		_, recv := fe.emitExpr(t.Receiver, scope)
		_, idx := fe.emitExpr(t.Idx, scope)
		ty, _ := llvmType(fe.e.types, t.InferredType())
		boxed := fe.boxI64(ty, val)
		fe.emitf("  call void @jsa_object_set_field(ptr %s, i64 %s, i64 %s)\n", recv, idx, boxed)
		return ty, val
	default:
		return "void", "undef"
	}
}

// emitStringIndexSet lowers a string index-write (spec.md §4.5: "bounds
// check, copy-on-write check..., conditional allocate-and-copy, byte
// write, and update of the binding's backing pointer"). Bounds checking
// is left to jsa_string_index_set itself, matching jsa_string_index's
// read side and jsa_object_get's array-index lowering, neither of which
// emits bounds-check IR either.
//
// The copy-on-write flag is tracked per binding (spec.md §9): when the
// receiver is a plain local or parameter, its localSlot carries an i1
// was-written flag that starts false and flips true on the first write,
// so the runtime only needs to allocate-and-copy once. A receiver with
// no stable binding (e.g. a freshly computed string) has no prior-write
// history to track, so it always passes false — correctly forcing a
// copy on its one and only write.
func (fe *funcEmitter) emitStringIndexSet(t *ast.Index, val string, scope *codegenScope) (string, string) {
	ident, isIdent := t.Receiver.(*ast.Ident)
	var slot localSlot
	var haveSlot bool
	if isIdent {
		slot, haveSlot = scope.lookup(ident.Name)
	}

	var recv string
	if haveSlot {
		recv = fe.nextTemp()
		fe.emitf("  %s = load ptr, ptr %s\n", recv, slot.ptr)
	} else {
		_, recv = fe.emitExpr(t.Receiver, scope)
	}
	_, idx := fe.emitExpr(t.Idx, scope)

	wasWritten := "0"
	if haveSlot && slot.wasWrittenPtr != "" {
		wf := fe.nextTemp()
		fe.emitf("  %s = load i1, ptr %s\n", wf, slot.wasWrittenPtr)
		wasWritten = wf
	}

	result := fe.nextTemp()
	fe.emitf("  %s = call ptr @jsa_string_index_set(ptr %s, i64 %s, ptr %s, i1 %s)\n", result, recv, idx, val, wasWritten)

	if haveSlot {
		fe.emitf("  store ptr %s, ptr %s\n", result, slot.ptr)
		if slot.wasWrittenPtr != "" {
			fe.emitf("  store i1 1, ptr %s\n", slot.wasWrittenPtr)
		}
	}
	return "ptr", result
}

// emitArrayNew lowers the Array(size) built-in — always an Int-element
// array per DESIGN.md's Open Question decision (e).
func (fe *funcEmitter) emitArrayNew(n *ast.ArrayNew, scope *codegenScope) (string, string) {
	_, size := fe.emitExpr(n.Size, scope)
	tmp := fe.nextTemp()
	fe.emitf("  %s = call ptr @jsa_array_new(i64 8, i64 %s)\n", tmp, size)
	return "ptr", tmp
}

func (fe *funcEmitter) emitArrayLit(n *ast.ArrayLit, scope *codegenScope) (string, string) {
	arr := fe.nextTemp()
	fe.emitf("  %s = call ptr @jsa_array_new(i64 8, i64 %d)\n", arr, len(n.Elems))
	for i, el := range n.Elems {
		ty, v := fe.emitExpr(el, scope)
		boxed := fe.boxI64(ty, v)
		fe.emitf("  call void @jsa_object_set_field(ptr %s, i64 %d, i64 %s)\n", arr, i, boxed)
	}
	return "ptr", arr
}

func (fe *funcEmitter) emitObjectLit(n *ast.ObjectLit, scope *codegenScope) (string, string) {
	obj := fe.nextTemp()
	fe.emitf("  %s = call ptr @jsa_object_new(i64 %d)\n", obj, len(n.Fields))
	info := fe.e.types.Lookup(n.InferredType())
	for _, f := range n.Fields {
		ty, v := fe.emitExpr(f.Value, scope)
		boxed := fe.boxI64(ty, v)
		fe.emitf("  call void @jsa_object_set_field(ptr %s, i64 %d, i64 %s)\n", obj, fieldIndex(info.Fields, f.Name), boxed)
	}
	return "ptr", obj
}
