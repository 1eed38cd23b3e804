package llvm

import (
	"fmt"
	"strings"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/mono"
	"github.com/nanov/jsasta/internal/types"
)

// codegenScope is a lexical alloca scope, mirroring internal/mono's env
// but mapping names to the stack slot codegen already emitted for
// them rather than to a symbols.Binding.
type codegenScope struct {
	parent *codegenScope
	slots  map[string]localSlot
}

func newCodegenScope(parent *codegenScope) *codegenScope {
	return &codegenScope{parent: parent, slots: map[string]localSlot{}}
}

func (s *codegenScope) define(name string, slot localSlot) { s.slots[name] = slot }

func (s *codegenScope) lookup(name string) (localSlot, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if slot, ok := cur.slots[name]; ok {
			return slot, true
		}
	}
	return localSlot{}, false
}

// emitSpecialization lowers one monotyped function clone to a `define`.
func (e *Emitter) emitSpecialization(spec *mono.Specialization) error {
	retTy, err := llvmType(e.types, spec.ReturnType)
	if err != nil {
		return err
	}

	params := make([]string, len(spec.ParamNames))
	for i, t := range spec.ParamTypes {
		ty, err := llvmType(e.types, t)
		if err != nil {
			return err
		}
		params[i] = fmt.Sprintf("%s %%arg.%s", ty, spec.ParamNames[i])
	}

	fmt.Fprintf(&e.buf, "define %s @%s(%s) {\n", retTy, spec.MangledName, strings.Join(params, ", "))
	e.buf.WriteString(e.debugLoc(spec.Func.Decl.Span()))
	fmt.Fprintf(&e.buf, "entry:\n")

	fe := &funcEmitter{e: e, returnType: retTy}
	scope := newCodegenScope(nil)
	for i, name := range spec.ParamNames {
		ty, _ := llvmType(e.types, spec.ParamTypes[i])
		isString := e.types.Lookup(spec.ParamTypes[i]).Kind == types.KindString
		slot := fe.allocaParam(name, ty, isString)
		scope.define(name, slot)
	}

	terminated := fe.emitBlock(spec.Body, scope)
	if !terminated {
		fe.emitDefaultReturn(retTy)
	}
	e.buf.WriteString("}\n\n")
	return nil
}

// emitEntry lowers the entry module's executable top-level statements
// into the program's start function (spec.md §4.5).
func (e *Emitter) emitEntry() error {
	fmt.Fprintf(&e.buf, "define void @%s() {\n", EntryFuncName)
	if e.prog.EntryBody != nil {
		e.buf.WriteString(e.debugLoc(e.prog.EntryBody.Span()))
	}
	e.buf.WriteString("entry:\n")

	fe := &funcEmitter{e: e, returnType: "void"}
	scope := newCodegenScope(nil)
	if e.prog.EntryBody != nil {
		fe.emitBlock(e.prog.EntryBody, scope)
	}
	e.buf.WriteString("  ret void\n}\n\n")
	return nil
}

// allocaParam emits the standard "alloca, then store the incoming
// argument" prologue pattern for one parameter. A String-kind parameter
// also gets its own was-written flag (initially false), since an
// index-write into a parameter needs the same copy-on-write tracking as
// one into a local (spec.md §4.5/§9).
func (fe *funcEmitter) allocaParam(name, ty string, isString bool) localSlot {
	ptr := fmt.Sprintf("%%%s.addr", name)
	fe.emitf("  %s = alloca %s\n", ptr, ty)
	fe.emitf("  store %s %%arg.%s, ptr %s\n", ty, name, ptr)
	slot := localSlot{ptr: ptr, ty: ty}
	if isString {
		slot.wasWrittenPtr = fe.allocaWasWrittenFlag(name)
	}
	return slot
}

// allocaLocal emits an alloca for a newly declared var/let/const and
// stores its initial value. A String-kind binding also gets its own
// was-written flag (spec.md §4.5/§9's copy-on-write contract).
func (fe *funcEmitter) allocaLocal(name, ty, value string, isString bool) localSlot {
	fe.tmp++
	ptr := fmt.Sprintf("%%%s.%d", name, fe.tmp)
	fe.emitf("  %s = alloca %s\n", ptr, ty)
	fe.emitf("  store %s %s, ptr %s\n", ty, value, ptr)
	slot := localSlot{ptr: ptr, ty: ty}
	if isString {
		slot.wasWrittenPtr = fe.allocaWasWrittenFlag(name)
	}
	return slot
}

// allocaWasWrittenFlag emits a fresh i1 slot initialized to false,
// tracking whether a String binding has been index-written yet.
func (fe *funcEmitter) allocaWasWrittenFlag(name string) string {
	fe.tmp++
	flag := fmt.Sprintf("%%%s.written.%d", name, fe.tmp)
	fe.emitf("  %s = alloca i1\n", flag)
	fe.emitf("  store i1 0, ptr %s\n", flag)
	return flag
}

func (fe *funcEmitter) emitDefaultReturn(retTy string) {
	if retTy == "void" {
		fe.emitf("  ret void\n")
		return
	}
	fe.emitf("  ret %s zeroinitializer\n", retTy)
}

// emitBlock lowers every statement of a block in its own scope,
// reporting whether the block definitely terminated (via return) so
// the caller can skip emitting a fallthrough terminator.
func (fe *funcEmitter) emitBlock(blk *ast.Block, parent *codegenScope) bool {
	scope := newCodegenScope(parent)
	terminated := false
	for _, s := range blk.Stmts {
		if terminated {
			break
		}
		terminated = fe.emitStmt(s, scope)
	}
	return terminated
}
