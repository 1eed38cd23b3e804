package llvm

import (
	"fmt"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/types"
)

// emitExpr lowers one expression and returns its IR type and the SSA
// value (or constant literal) it evaluates to. Every node arriving here
// already carries a concrete InferredType from C8 — codegen never
// re-derives a type, only renders the one the fixed point settled on.
func (fe *funcEmitter) emitExpr(e ast.Expr, scope *codegenScope) (string, string) {
	switch n := e.(type) {
	case *ast.IntLit:
		return "i64", fmt.Sprintf("%d", n.Value)
	case *ast.DoubleLit:
		return "double", fmt.Sprintf("%g", n.Value)
	case *ast.BoolLit:
		if n.Value {
			return "i1", "1"
		}
		return "i1", "0"
	case *ast.StringLit:
		return "ptr", fe.e.refString(n.Value)
	case *ast.Ident:
		return fe.emitIdent(n, scope)
	case *ast.Unary:
		return fe.emitUnary(n, scope)
	case *ast.Binary:
		return fe.emitBinary(n, scope)
	case *ast.Ternary:
		return fe.emitTernary(n, scope)
	case *ast.Assign:
		return fe.emitAssign(n, scope)
	case *ast.IncDec:
		return fe.emitIncDec(n, scope)
	case *ast.Member:
		return fe.emitMember(n, scope)
	case *ast.Index:
		return fe.emitIndex(n, scope)
	case *ast.Call:
		return fe.emitCall(n, scope)
	case *ast.ArrayNew:
		return fe.emitArrayNew(n, scope)
	case *ast.ArrayLit:
		return fe.emitArrayLit(n, scope)
	case *ast.ObjectLit:
		return fe.emitObjectLit(n, scope)
	default:
		return "void", "undef"
	}
}

func (fe *funcEmitter) kind(e ast.Expr) types.Kind {
	return fe.e.types.Lookup(e.InferredType()).Kind
}

// promoteTo widens val from ty to target when the two differ, the only
// such widening this closed type lattice ever needs (Int -> Double, per
// spec.md §4.2's numeric join). ty == target is the common case and is
// a no-op.
func (fe *funcEmitter) promoteTo(ty, val, target string) string {
	if ty == target {
		return val
	}
	if ty == "i64" && target == "double" {
		tmp := fe.nextTemp()
		fe.emitf("  %s = sitofp i64 %s to double\n", tmp, val)
		return tmp
	}
	return val
}

func (fe *funcEmitter) emitIdent(n *ast.Ident, scope *codegenScope) (string, string) {
	slot, ok := scope.lookup(n.Name)
	if !ok {
		return "void", "undef"
	}
	tmp := fe.nextTemp()
	fe.emitf("  %s = load %s, ptr %s\n", tmp, slot.ty, slot.ptr)
	return slot.ty, tmp
}

func (fe *funcEmitter) emitUnary(n *ast.Unary, scope *codegenScope) (string, string) {
	ty, val := fe.emitExpr(n.Operand, scope)
	tmp := fe.nextTemp()
	switch n.Op {
	case ast.OpNeg:
		if ty == "double" {
			fe.emitf("  %s = fneg double %s\n", tmp, val)
		} else {
			fe.emitf("  %s = sub i64 0, %s\n", tmp, val)
		}
	case ast.OpNot:
		fe.emitf("  %s = xor i1 %s, true\n", tmp, val)
		ty = "i1"
	}
	return ty, tmp
}

// arithOp maps an arithmetic BinaryOp to its integer/float instruction
// mnemonic pair.
func arithOp(op ast.BinaryOp) (intOp, fltOp string) {
	switch op {
	case ast.OpAdd:
		return "add", "fadd"
	case ast.OpSub:
		return "sub", "fsub"
	case ast.OpMul:
		return "mul", "fmul"
	case ast.OpDiv:
		return "sdiv", "fdiv"
	case ast.OpMod:
		return "srem", "frem"
	default:
		return "add", "fadd"
	}
}

func cmpOp(op ast.BinaryOp) (intPred, fltPred string) {
	switch op {
	case ast.OpLt:
		return "slt", "olt"
	case ast.OpGt:
		return "sgt", "ogt"
	case ast.OpLe:
		return "sle", "ole"
	case ast.OpGe:
		return "sge", "oge"
	case ast.OpEq:
		return "eq", "oeq"
	case ast.OpNe:
		return "ne", "one"
	default:
		return "eq", "oeq"
	}
}

func (fe *funcEmitter) emitBinary(n *ast.Binary, scope *codegenScope) (string, string) {
	// String `+` concatenation is its own rt call, not an arithmetic
	// instruction (spec.md §4.5's strcat_* lowering).
	if fe.kind(n.Left) == types.KindString && n.Op == ast.OpAdd {
		_, l := fe.emitExpr(n.Left, scope)
		_, r := fe.emitExpr(n.Right, scope)
		tmp := fe.nextTemp()
		fe.emitf("  %s = call ptr @jsa_string_concat(ptr %s, ptr %s)\n", tmp, l, r)
		return "ptr", tmp
	}
	if fe.kind(n.Left) == types.KindString && (n.Op == ast.OpEq || n.Op == ast.OpNe) {
		_, l := fe.emitExpr(n.Left, scope)
		_, r := fe.emitExpr(n.Right, scope)
		tmp := fe.nextTemp()
		fe.emitf("  %s = call i1 @jsa_string_eq(ptr %s, ptr %s)\n", tmp, l, r)
		if n.Op == ast.OpNe {
			tmp2 := fe.nextTemp()
			fe.emitf("  %s = xor i1 %s, true\n", tmp2, tmp)
			return "i1", tmp2
		}
		return "i1", tmp
	}
	if fe.kind(n.Left) == types.KindString {
		_, l := fe.emitExpr(n.Left, scope)
		_, r := fe.emitExpr(n.Right, scope)
		cmp := fe.nextTemp()
		fe.emitf("  %s = call i64 @jsa_string_cmp(ptr %s, ptr %s)\n", cmp, l, r)
		pred, _ := cmpOp(n.Op)
		tmp := fe.nextTemp()
		fe.emitf("  %s = icmp %s i64 %s, 0\n", tmp, pred, cmp)
		return "i1", tmp
	}

	lty, l := fe.emitExpr(n.Left, scope)
	_, r := fe.emitExpr(n.Right, scope)
	isFloat := lty == "double"

	switch n.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		if fe.e.opts.DebugMode && (n.Op == ast.OpDiv || n.Op == ast.OpMod) {
			if isFloat {
				fe.emitf("  call void @jsa_assert_nonzero_f64(double %s)\n", r)
			} else {
				fe.emitf("  call void @jsa_assert_nonzero_i64(i64 %s)\n", r)
			}
		}
		intOp, fltOp := arithOp(n.Op)
		tmp := fe.nextTemp()
		if isFloat {
			fe.emitf("  %s = %s double %s, %s\n", tmp, fltOp, l, r)
			return "double", tmp
		}
		fe.emitf("  %s = %s i64 %s, %s\n", tmp, intOp, l, r)
		return "i64", tmp
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe, ast.OpEq, ast.OpNe:
		intPred, fltPred := cmpOp(n.Op)
		tmp := fe.nextTemp()
		if isFloat {
			fe.emitf("  %s = fcmp %s double %s, %s\n", tmp, fltPred, l, r)
		} else {
			fe.emitf("  %s = icmp %s i64 %s, %s\n", tmp, intPred, l, r)
		}
		return "i1", tmp
	case ast.OpAnd:
		tmp := fe.nextTemp()
		fe.emitf("  %s = and i1 %s, %s\n", tmp, l, r)
		return "i1", tmp
	case ast.OpOr:
		tmp := fe.nextTemp()
		fe.emitf("  %s = or i1 %s, %s\n", tmp, l, r)
		return "i1", tmp
	case ast.OpBitAnd:
		tmp := fe.nextTemp()
		fe.emitf("  %s = and i64 %s, %s\n", tmp, l, r)
		return "i64", tmp
	case ast.OpShr:
		tmp := fe.nextTemp()
		fe.emitf("  %s = ashr i64 %s, %s\n", tmp, l, r)
		return "i64", tmp
	default:
		return "i64", "0"
	}
}

func (fe *funcEmitter) emitTernary(n *ast.Ternary, scope *codegenScope) (string, string) {
	_, cond := fe.emitExpr(n.Cond, scope)
	thenL := fe.nextLabel("tern.then.")
	elseL := fe.nextLabel("tern.else.")
	endL := fe.nextLabel("tern.end.")

	ty, _ := llvmType(fe.e.types, n.InferredType())
	result := fe.nextTemp() + ".addr"
	fe.emitf("  %s = alloca %s\n", result, ty)

	fe.emitf("  br i1 %s, label %%%s, label %%%s\n", cond, thenL, elseL)
	fe.emitf("%s:\n", thenL)
	tty, tv := fe.emitExpr(n.Then, scope)
	tv = fe.promoteTo(tty, tv, ty)
	fe.emitf("  store %s %s, ptr %s\n", ty, tv, result)
	fe.emitf("  br label %%%s\n", endL)
	fe.emitf("%s:\n", elseL)
	ety, ev := fe.emitExpr(n.Else, scope)
	ev = fe.promoteTo(ety, ev, ty)
	fe.emitf("  store %s %s, ptr %s\n", ty, ev, result)
	fe.emitf("  br label %%%s\n", endL)
	fe.emitf("%s:\n", endL)

	tmp := fe.nextTemp()
	fe.emitf("  %s = load %s, ptr %s\n", tmp, ty, result)
	return ty, tmp
}

func (fe *funcEmitter) emitAssign(n *ast.Assign, scope *codegenScope) (string, string) {
	rty, rv := fe.emitExpr(n.Value, scope)
	finalVal := rv

	if ident, ok := n.Target.(*ast.Ident); ok {
		slot, ok := scope.lookup(ident.Name)
		if !ok {
			return "void", "undef"
		}
		// The slot's type already reflects the binding's final,
		// post-widening type (it was allocated from n.BindingType), so
		// a narrower-typed right-hand side is promoted to match before
		// it touches the slot — otherwise a later `x += 2.5` on an
		// Int-initialized x would mix a double operand into an `add i64`.
		rv = fe.promoteTo(rty, rv, slot.ty)
		finalVal = rv
		if n.Op != nil {
			cur := fe.nextTemp()
			fe.emitf("  %s = load %s, ptr %s\n", cur, slot.ty, slot.ptr)
			intOp, fltOp := arithOp(*n.Op)
			tmp := fe.nextTemp()
			if slot.ty == "double" {
				fe.emitf("  %s = %s double %s, %s\n", tmp, fltOp, cur, rv)
			} else {
				fe.emitf("  %s = %s i64 %s, %s\n", tmp, intOp, cur, rv)
			}
			finalVal = tmp
		}
		fe.emitf("  store %s %s, ptr %s\n", slot.ty, finalVal, slot.ptr)
		return slot.ty, finalVal
	}

	// Member/Index assignment targets lower through their own
	// address-of helpers.
	return fe.emitStoreToLvalue(n.Target, finalVal, scope)
}

func (fe *funcEmitter) emitIncDec(n *ast.IncDec, scope *codegenScope) (string, string) {
	ident, ok := n.Target.(*ast.Ident)
	if !ok {
		_, v := fe.emitExpr(n.Target, scope)
		return "i64", v
	}
	slot, _ := scope.lookup(ident.Name)
	cur := fe.nextTemp()
	fe.emitf("  %s = load %s, ptr %s\n", cur, slot.ty, slot.ptr)
	delta := "1"
	op := "add"
	if !n.Inc {
		op = "sub"
	}
	updated := fe.nextTemp()
	if slot.ty == "double" {
		fop := "fadd"
		if !n.Inc {
			fop = "fsub"
		}
		fe.emitf("  %s = %s double %s, 1.0\n", updated, fop, cur)
	} else {
		fe.emitf("  %s = %s i64 %s, %s\n", updated, op, cur, delta)
	}
	fe.emitf("  store %s %s, ptr %s\n", slot.ty, updated, slot.ptr)
	if n.Postfix {
		return slot.ty, cur
	}
	return slot.ty, updated
}
