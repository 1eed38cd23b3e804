package mono

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/consteval"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/symbols"
	"github.com/nanov/jsasta/internal/types"
)

// walker carries the state one traversal of one reachable body needs:
// the program being built, where to report diagnostics, whether this
// walk discovered anything new (spec.md §4.4's "progressed" flag), and
// — when walking a specialization's cloned body rather than the entry
// body — the specialization whose return type is being accumulated.
type walker struct {
	prog       *Program
	rep        diag.Reporter
	progressed *bool
	spec       *Specialization
}

func (w *walker) builtins() types.Builtins { return w.prog.Interner.Builtins() }

// typeExpr assigns expr's inferred type bottom-up (spec.md §4.4 "Phase
// 2..N"). It returns Unknown, without reporting an error, when the
// expression's type cannot yet be determined (e.g. a recursive call
// whose argument type is still Unknown) — the caller re-walks on a
// later iteration once more information is available.
func (w *walker) typeExpr(e ast.Expr, en *env) types.TypeID {
	if e == nil {
		return w.builtins().Unknown
	}
	t := w.typeExprInner(e, en)
	e.SetType(t)
	return t
}

func (w *walker) typeExprInner(e ast.Expr, en *env) types.TypeID {
	b := w.builtins()
	switch n := e.(type) {
	case *ast.IntLit:
		return b.Int
	case *ast.DoubleLit:
		return b.Double
	case *ast.StringLit:
		return b.String
	case *ast.BoolLit:
		return b.Bool
	case *ast.Ident:
		return w.typeIdent(n, en)
	case *ast.Unary:
		return w.typeUnary(n, en)
	case *ast.Binary:
		return w.typeBinary(n, en)
	case *ast.Ternary:
		return w.typeTernary(n, en)
	case *ast.Assign:
		return w.typeAssign(n, en)
	case *ast.IncDec:
		return w.typeIncDec(n, en)
	case *ast.Member:
		return w.typeMember(n, en)
	case *ast.Index:
		return w.typeIndex(n, en)
	case *ast.Call:
		return w.typeCall(n, en)
	case *ast.ArrayNew:
		return w.typeArrayNew(n, en)
	case *ast.ArrayLit:
		return w.typeArrayLit(n, en)
	case *ast.ObjectLit:
		return w.typeObjectLit(n, en)
	default:
		return b.Unknown
	}
}

func (w *walker) typeIdent(n *ast.Ident, en *env) types.TypeID {
	b := w.builtins()
	binding, ok := en.scope.Lookup(n.Name)
	if !ok {
		diag.Error(w.rep, diag.TypeUndefinedName, n.Span(), "undefined name: "+n.Name)
		return b.Unknown
	}
	switch binding.Kind {
	case symbols.KindFunc:
		en.setFuncRef(n.Name, binding.Decl)
		return w.prog.Interner.Function(nil, b.Unknown, false)
	default:
		return binding.Type
	}
}

func (w *walker) typeUnary(n *ast.Unary, en *env) types.TypeID {
	b := w.builtins()
	t := w.typeExpr(n.Operand, en)
	if t == b.Unknown {
		return b.Unknown
	}
	switch n.Op {
	case ast.OpNeg:
		if !types.IsNumeric(kindOf(w.prog.Interner, t)) {
			diag.Error(w.rep, diag.TypeMismatch, n.Span(), "unary - requires a numeric operand")
			return b.Unknown
		}
		return t
	case ast.OpNot:
		if t != b.Bool {
			diag.Error(w.rep, diag.TypeMismatch, n.Span(), "unary ! requires a Bool operand")
			return b.Unknown
		}
		return b.Bool
	default:
		return b.Unknown
	}
}

func kindOf(in *types.Interner, t types.TypeID) types.Kind { return in.Lookup(t).Kind }

func (w *walker) typeBinary(n *ast.Binary, en *env) types.TypeID {
	b := w.builtins()
	lt := w.typeExpr(n.Left, en)
	rt := w.typeExpr(n.Right, en)
	if lt == b.Unknown || rt == b.Unknown {
		return b.Unknown
	}
	lk, rk := kindOf(w.prog.Interner, lt), kindOf(w.prog.Interner, rt)

	switch n.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		opStr := n.Op.String()
		rk2, ok := types.ArithmeticResult(opStr, lk, rk)
		if !ok {
			diag.Error(w.rep, diag.TypeMismatch, n.Span(), "operator "+opStr+" cannot be applied to "+lk.String()+" and "+rk.String())
			return b.Unknown
		}
		return primitiveTypeID(b, rk2)
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		if !types.OrderingResult(lk, rk) {
			diag.Error(w.rep, diag.TypeMismatch, n.Span(), "operator "+n.Op.String()+" requires numerics or Strings")
			return b.Unknown
		}
		return b.Bool
	case ast.OpEq, ast.OpNe:
		if !types.EqualityCompatible(lk, rk) {
			diag.Error(w.rep, diag.TypeEqualityMismatch, n.Span(), "== / != require compatible operand types")
			return b.Unknown
		}
		return b.Bool
	case ast.OpAnd, ast.OpOr:
		if !types.LogicalOperandsOK(lk, rk) {
			diag.Error(w.rep, diag.TypeMismatch, n.Span(), "&& / || require Bool operands")
			return b.Unknown
		}
		return b.Bool
	case ast.OpBitAnd, ast.OpShr:
		if !types.BitwiseOperandsOK(lk, rk) {
			diag.Error(w.rep, diag.TypeMismatch, n.Span(), "& / >> require Int operands")
			return b.Unknown
		}
		return b.Int
	default:
		return b.Unknown
	}
}

func primitiveTypeID(b types.Builtins, k types.Kind) types.TypeID {
	switch k {
	case types.KindInt:
		return b.Int
	case types.KindDouble:
		return b.Double
	case types.KindString:
		return b.String
	case types.KindBool:
		return b.Bool
	default:
		return b.Unknown
	}
}

func (w *walker) typeTernary(n *ast.Ternary, en *env) types.TypeID {
	b := w.builtins()
	ct := w.typeExpr(n.Cond, en)
	tt := w.typeExpr(n.Then, en)
	et := w.typeExpr(n.Else, en)
	if ct == b.Unknown || tt == b.Unknown || et == b.Unknown {
		return b.Unknown
	}
	if ct != b.Bool {
		diag.Error(w.rep, diag.TypeMismatch, n.Cond.Span(), "ternary condition must be Bool")
		return b.Unknown
	}
	if tt == et {
		return tt
	}
	if k, ok := types.NumericJoin(kindOf(w.prog.Interner, tt), kindOf(w.prog.Interner, et)); ok {
		return primitiveTypeID(b, k)
	}
	diag.Error(w.rep, diag.TypeMismatch, n.Span(), "ternary branches have incompatible types")
	return b.Unknown
}

// typeAssign implements spec.md §4.2's compound-assign desugar (`x op=
// e` typed as `x = x op e`) and the monomorphic-per-scope-instance join
// rule: a binding's type is the join of its initializer and every
// subsequent assignment in its scope.
func (w *walker) typeAssign(n *ast.Assign, en *env) types.TypeID {
	b := w.builtins()
	rt := w.typeExpr(n.Value, en)
	if rt == b.Unknown {
		w.typeExpr(n.Target, en)
		return b.Unknown
	}

	ident, isIdent := n.Target.(*ast.Ident)
	var curType types.TypeID
	var binding symbols.Binding
	var haveBinding bool
	if isIdent {
		if bnd, ok := en.scope.Lookup(ident.Name); ok {
			binding, haveBinding = bnd, true
			curType = bnd.Type
		}
	} else {
		curType = w.typeExpr(n.Target, en)
	}

	want := rt
	if n.Op != nil {
		lk, rk := kindOf(w.prog.Interner, curType), kindOf(w.prog.Interner, rt)
		joined, ok := types.ArithmeticResult(n.Op.String(), lk, rk)
		if !ok {
			diag.Error(w.rep, diag.TypeMismatch, n.Span(), "compound assignment operand types are incompatible")
			return b.Unknown
		}
		want = primitiveTypeID(b, joined)
	}

	if isIdent && haveBinding {
		final := want
		if curType != b.Unknown && curType != want {
			k, ok := types.NumericJoin(kindOf(w.prog.Interner, curType), kindOf(w.prog.Interner, want))
			if !ok {
				diag.Error(w.rep, diag.TypeAssignmentJoinConflict, n.Span(),
					"assignment to "+ident.Name+" conflicts with its established type")
				return b.Unknown
			}
			final = primitiveTypeID(b, k)
		}
		binding.Type = final
		if binding.VarDecl != nil {
			binding.VarDecl.BindingType = final
		}
		en.scope.Redefine(binding)
		ident.SetType(final)
		return final
	}

	return want
}

func (w *walker) typeIncDec(n *ast.IncDec, en *env) types.TypeID {
	b := w.builtins()
	t := w.typeExpr(n.Target, en)
	if t == b.Unknown {
		return b.Unknown
	}
	if !types.IsNumeric(kindOf(w.prog.Interner, t)) {
		diag.Error(w.rep, diag.TypeMismatch, n.Span(), "++/-- requires a numeric lvalue")
		return b.Unknown
	}
	return t
}

func (w *walker) typeMember(n *ast.Member, en *env) types.TypeID {
	b := w.builtins()
	rt := w.typeExpr(n.Receiver, en)
	if rt == b.Unknown {
		return b.Unknown
	}
	info := w.prog.Interner.Lookup(rt)
	if info.Kind != types.KindObject && info.Kind != types.KindStruct {
		diag.Error(w.rep, diag.TypeBadReceiver, n.Span(), "member access requires an object or struct receiver")
		return b.Unknown
	}
	for _, f := range info.Fields {
		if f.Name == n.Name {
			return f.Type
		}
	}
	diag.Error(w.rep, diag.TypeNoSuchMember, n.Span(), "no such member: "+n.Name)
	return b.Unknown
}

func (w *walker) typeIndex(n *ast.Index, en *env) types.TypeID {
	b := w.builtins()
	rt := w.typeExpr(n.Receiver, en)
	it := w.typeExpr(n.Idx, en)
	if rt == b.Unknown || it == b.Unknown {
		return b.Unknown
	}
	if it != b.Int {
		diag.Error(w.rep, diag.TypeBadIndexType, n.Idx.Span(), "index must be Int")
		return b.Unknown
	}
	info := w.prog.Interner.Lookup(rt)
	switch info.Kind {
	case types.KindArray:
		return info.Elem
	case types.KindString:
		return b.String
	default:
		diag.Error(w.rep, diag.TypeBadReceiver, n.Span(), "indexing requires an Array or String receiver")
		return b.Unknown
	}
}

// typeArrayNew types the `Array(size)` built-in. The grammar has no
// element-type annotation on this form, so — absent any declared
// element type to draw from — every Array(n) is an Array of Int,
// matching the only way array values are produced and then filled in
// the end-to-end scenarios (index-assignment of numeric values); see
// DESIGN.md's Open Question decision for this package.
func (w *walker) typeArrayNew(n *ast.ArrayNew, en *env) types.TypeID {
	b := w.builtins()
	w.typeExpr(n.Size, en)
	size, ok := consteval.ArraySize(n.Size, scopeConstEnv{en.scope}, w.rep)
	if !ok {
		return b.Unknown
	}
	return w.prog.Interner.Array(b.Int, size)
}

// scopeConstEnv adapts a symbols.Scope chain to consteval.Env, for
// const expressions encountered inside function bodies (array-size
// arguments) rather than module-level const declarations.
type scopeConstEnv struct{ scope *symbols.Scope }

func (e scopeConstEnv) Lookup(name string) (consteval.Value, bool) {
	b, ok := e.scope.Lookup(name)
	if !ok || b.Kind != symbols.KindConst {
		return consteval.Value{}, false
	}
	return consteval.Value{Kind: b.ConstValue.Kind, I: b.ConstValue.I, F: b.ConstValue.F, S: b.ConstValue.S, B: b.ConstValue.B}, true
}

func (w *walker) typeArrayLit(n *ast.ArrayLit, en *env) types.TypeID {
	b := w.builtins()
	if len(n.Elems) == 0 {
		return w.prog.Interner.Array(b.Unknown, 0)
	}
	elemType := b.Unknown
	anyUnknown := false
	for _, el := range n.Elems {
		t := w.typeExpr(el, en)
		if t == b.Unknown {
			anyUnknown = true
			continue
		}
		if elemType == b.Unknown {
			elemType = t
			continue
		}
		if elemType != t {
			if k, ok := types.NumericJoin(kindOf(w.prog.Interner, elemType), kindOf(w.prog.Interner, t)); ok {
				elemType = primitiveTypeID(b, k)
			} else {
				diag.Error(w.rep, diag.TypeMismatch, el.Span(), "array literal elements must share a common type")
				return b.Unknown
			}
		}
	}
	if anyUnknown {
		return b.Unknown
	}
	return w.prog.Interner.Array(elemType, uint32(len(n.Elems)))
}

func (w *walker) typeObjectLit(n *ast.ObjectLit, en *env) types.TypeID {
	b := w.builtins()
	fields := make([]types.Field, 0, len(n.Fields))
	for _, f := range n.Fields {
		t := w.typeExpr(f.Value, en)
		if t == b.Unknown {
			return b.Unknown
		}
		fields = append(fields, types.Field{Name: f.Name, Type: t})
	}
	return w.prog.Interner.Object(fields)
}
