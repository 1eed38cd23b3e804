package mono

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/symbols"
	"github.com/nanov/jsasta/internal/types"
)

// ConsoleLogResolved marks a Call node as the `console.log` built-in
// (spec.md §4.5: "a variadic built-in") rather than a resolved
// specialization index, since `console.log(...)` parses as an ordinary
// Member-then-Call chain (the grammar reserves no keyword for it).
const ConsoleLogResolved = ^uint32(0)

func (w *walker) typeCall(n *ast.Call, en *env) types.TypeID {
	b := w.builtins()

	if isConsoleLog(n.Callee) {
		for _, a := range n.Args {
			w.typeExpr(a, en)
		}
		n.Resolved = ConsoleLogResolved
		return b.Void
	}

	decl, ok := w.resolveCallee(n.Callee, en)
	if !ok {
		return b.Unknown
	}

	argTypes := make([]types.TypeID, len(n.Args))
	anyUnknown := false
	for i, a := range n.Args {
		argTypes[i] = w.typeExpr(a, en)
		if argTypes[i] == b.Unknown {
			anyUnknown = true
		}
	}
	if anyUnknown {
		// Deferred: wait for a later iteration once argument types
		// resolve (spec.md §4.4 "Tie-breaking": recursive calls whose
		// argument types are still Unknown on first encounter defer).
		return b.Unknown
	}
	if len(argTypes) != len(decl.Params) {
		diag.Error(w.rep, diag.TypeWrongArity, n.Span(),
			"wrong number of arguments calling "+decl.Name)
		return b.Unknown
	}

	fi := w.prog.funcs[decl]
	spec := w.findOrCreateSpecialization(fi, argTypes)
	n.Resolved = uint32(spec.DiscoveryIndex)
	return spec.ReturnType
}

func isConsoleLog(callee ast.Expr) bool {
	m, ok := callee.(*ast.Member)
	if !ok || m.Name != "log" {
		return false
	}
	id, ok := m.Receiver.(*ast.Ident)
	return ok && id.Name == "console"
}

// resolveCallee finds the FunctionDecl a call's callee names, following
// a first-class function reference through a variable if present
// before falling back to a direct function binding.
func (w *walker) resolveCallee(callee ast.Expr, en *env) (*ast.FunctionDecl, bool) {
	id, ok := callee.(*ast.Ident)
	if !ok {
		diag.Error(w.rep, diag.TypeBadReceiver, callee.Span(), "call target must be a function name")
		return nil, false
	}
	if decl, ok := en.funcRefFor(id.Name); ok {
		return decl, true
	}
	binding, ok := en.scope.Lookup(id.Name)
	if !ok {
		diag.Error(w.rep, diag.TypeUndefinedName, id.Span(), "undefined name: "+id.Name)
		return nil, false
	}
	if binding.Kind != symbols.KindFunc {
		diag.Error(w.rep, diag.TypeBadReceiver, id.Span(), id.Name+" is not callable")
		return nil, false
	}
	return binding.Decl, true
}

// findOrCreateSpecialization implements spec.md §4.4's call-site rule:
// reuse a specialization whose parameter type tuple already matches, or
// clone the function's body, bind parameters to argTypes, and register
// a fresh one while marking the engine "progressed".
func (w *walker) findOrCreateSpecialization(fi *FuncInfo, argTypes []types.TypeID) *Specialization {
	key := sigKey(argTypes)
	if spec, ok := fi.bySig[key]; ok {
		return spec
	}

	clonedBody := fi.Decl.Body.Clone().(*ast.Block)
	spec := &Specialization{
		Func:           fi,
		ParamTypes:     append([]types.TypeID(nil), argTypes...),
		ParamNames:     append([]string(nil), fi.Decl.Params...),
		Body:           clonedBody,
		ReturnType:     w.builtins().Unknown,
		DiscoveryIndex: len(w.prog.AllSpecs),
	}
	spec.MangledName = mangle(fi.QualifiedName, argTypes, w.prog.Interner)
	fi.bySig[key] = spec
	fi.Specs = append(fi.Specs, spec)
	w.prog.AllSpecs = append(w.prog.AllSpecs, spec)
	if w.progressed != nil {
		*w.progressed = true
	}
	return spec
}
