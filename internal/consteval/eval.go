package consteval

import (
	"fmt"
	"math"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/types"
)

// ErrorKind selects which diagnostic code a const-eval failure maps to.
type ErrorKind uint8

const (
	ErrUndefinedRef ErrorKind = iota
	ErrNotConstant
	ErrTypeMismatch
	ErrDivisionByZero
	ErrOverflow
)

// Error is returned by Evaluate when an expression cannot be folded to
// a constant value.
type Error struct {
	Kind ErrorKind
	Span ast.Expr // the offending subexpression, for its Span()
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Env resolves previously-defined const names to their already-folded
// values (spec.md §4.3: "references to previously defined consts").
type Env interface {
	Lookup(name string) (Value, bool)
}

// Evaluate folds expr to a constant Value using env for name references.
// It implements spec.md §4.3: literals, the five binary arithmetic ops,
// the six comparison ops, unary minus/not, and const references.
func Evaluate(expr ast.Expr, env Env) (Value, *Error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return IntValue(e.Value), nil
	case *ast.DoubleLit:
		return DoubleValue(e.Value), nil
	case *ast.StringLit:
		return StringValue(e.Value), nil
	case *ast.BoolLit:
		return BoolValue(e.Value), nil
	case *ast.Ident:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return Value{}, &Error{Kind: ErrUndefinedRef, Span: expr, Msg: fmt.Sprintf("undefined constant: %s", e.Name)}
		}
		return v, nil
	case *ast.Unary:
		return evalUnary(e, env)
	case *ast.Binary:
		return evalBinary(e, env)
	default:
		return Value{}, &Error{Kind: ErrNotConstant, Span: expr, Msg: "expression is not a compile-time constant"}
	}
}

func evalUnary(e *ast.Unary, env Env) (Value, *Error) {
	v, err := Evaluate(e.Operand, env)
	if err != nil {
		return Value{}, err
	}
	switch e.Op {
	case ast.OpNeg:
		switch v.Kind {
		case types.KindInt:
			if v.I == math.MinInt32 {
				return Value{}, &Error{Kind: ErrOverflow, Span: e, Msg: "negation overflows Int"}
			}
			return IntValue(-v.I), nil
		case types.KindDouble:
			return DoubleValue(-v.F), nil
		default:
			return Value{}, &Error{Kind: ErrTypeMismatch, Span: e, Msg: "unary - requires a numeric operand"}
		}
	case ast.OpNot:
		if v.Kind != types.KindBool {
			return Value{}, &Error{Kind: ErrTypeMismatch, Span: e, Msg: "unary ! requires a Bool operand"}
		}
		return BoolValue(!v.B), nil
	}
	return Value{}, &Error{Kind: ErrNotConstant, Span: e, Msg: "unsupported unary operator in constant expression"}
}

func evalBinary(e *ast.Binary, env Env) (Value, *Error) {
	l, err := Evaluate(e.Left, env)
	if err != nil {
		return Value{}, err
	}
	r, err := Evaluate(e.Right, env)
	if err != nil {
		return Value{}, err
	}

	switch e.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return evalArith(e, e.Op, l, r)
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe, ast.OpEq, ast.OpNe:
		return evalCompare(e, e.Op, l, r)
	default:
		return Value{}, &Error{Kind: ErrNotConstant, Span: e, Msg: "operator not supported in constant expressions"}
	}
}

func evalArith(e *ast.Binary, op ast.BinaryOp, l, r Value) (Value, *Error) {
	if op == ast.OpAdd && (l.Kind == types.KindString || r.Kind == types.KindString) {
		return StringValue(formatForConcat(l) + formatForConcat(r)), nil
	}
	if !types.IsNumeric(l.Kind) || !types.IsNumeric(r.Kind) {
		return Value{}, &Error{Kind: ErrTypeMismatch, Span: e, Msg: "arithmetic requires numeric operands"}
	}
	if l.Kind == types.KindDouble || r.Kind == types.KindDouble {
		lf, rf := l.AsDouble(), r.AsDouble()
		switch op {
		case ast.OpAdd:
			return DoubleValue(lf + rf), nil
		case ast.OpSub:
			return DoubleValue(lf - rf), nil
		case ast.OpMul:
			return DoubleValue(lf * rf), nil
		case ast.OpDiv:
			if rf == 0 {
				return Value{}, &Error{Kind: ErrDivisionByZero, Span: e, Msg: "division by zero in constant expression"}
			}
			return DoubleValue(lf / rf), nil
		case ast.OpMod:
			if rf == 0 {
				return Value{}, &Error{Kind: ErrDivisionByZero, Span: e, Msg: "modulo by zero in constant expression"}
			}
			return DoubleValue(math.Mod(lf, rf)), nil
		}
	}

	li, ri := int64(l.I), int64(r.I)
	var res int64
	switch op {
	case ast.OpAdd:
		res = li + ri
	case ast.OpSub:
		res = li - ri
	case ast.OpMul:
		res = li * ri
	case ast.OpDiv:
		if ri == 0 {
			return Value{}, &Error{Kind: ErrDivisionByZero, Span: e, Msg: "division by zero in constant expression"}
		}
		res = li / ri
	case ast.OpMod:
		if ri == 0 {
			return Value{}, &Error{Kind: ErrDivisionByZero, Span: e, Msg: "modulo by zero in constant expression"}
		}
		res = li % ri
	}
	if res > math.MaxInt32 || res < math.MinInt32 {
		return Value{}, &Error{Kind: ErrOverflow, Span: e, Msg: "Int arithmetic overflows in constant expression"}
	}
	return IntValue(int32(res)), nil
}

func evalCompare(e *ast.Binary, op ast.BinaryOp, l, r Value) (Value, *Error) {
	if l.Kind == types.KindString && r.Kind == types.KindString {
		var b bool
		switch op {
		case ast.OpLt:
			b = l.S < r.S
		case ast.OpGt:
			b = l.S > r.S
		case ast.OpLe:
			b = l.S <= r.S
		case ast.OpGe:
			b = l.S >= r.S
		case ast.OpEq:
			b = l.S == r.S
		case ast.OpNe:
			b = l.S != r.S
		}
		return BoolValue(b), nil
	}
	if !types.IsNumeric(l.Kind) || !types.IsNumeric(r.Kind) {
		if op == ast.OpEq || op == ast.OpNe {
			if l.Kind != r.Kind {
				return Value{}, &Error{Kind: ErrTypeMismatch, Span: e, Msg: "== / != require matching types"}
			}
			eq := l.B == r.B
			if op == ast.OpNe {
				eq = !eq
			}
			return BoolValue(eq), nil
		}
		return Value{}, &Error{Kind: ErrTypeMismatch, Span: e, Msg: "comparison requires numeric or String operands"}
	}
	lf, rf := l.AsDouble(), r.AsDouble()
	var b bool
	switch op {
	case ast.OpLt:
		b = lf < rf
	case ast.OpGt:
		b = lf > rf
	case ast.OpLe:
		b = lf <= rf
	case ast.OpGe:
		b = lf >= rf
	case ast.OpEq:
		b = lf == rf
	case ast.OpNe:
		b = lf != rf
	}
	return BoolValue(b), nil
}

func formatForConcat(v Value) string {
	switch v.Kind {
	case types.KindInt:
		return fmt.Sprintf("%d", v.I)
	case types.KindDouble:
		return formatDoubleShortest(v.F)
	case types.KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case types.KindString:
		return v.S
	default:
		return ""
	}
}

// formatDoubleShortest renders a Double using the shortest round-trip
// decimal representation, per spec.md §4.2's string-concat formatting
// rule.
func formatDoubleShortest(f float64) string {
	return fmt.Sprintf("%g", f)
}
