package consteval

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/source"
	"github.com/nanov/jsasta/internal/types"
)

// ArraySize folds expr as a fixed array size (the `Array(N)` builtin's
// argument, spec.md §4.3/§6) and enforces that it is a non-negative Int
// constant: zero is accepted, a negative value reports T313, a non-Int
// value reports T307, and an expression that does not fold reports the
// evaluator's own error code.
func ArraySize(expr ast.Expr, env Env, r diag.Reporter) (uint32, bool) {
	v, err := Evaluate(expr, env)
	if err != nil {
		diag.Error(r, codeForError(err.Kind), exprSpan(expr), err.Msg)
		return 0, false
	}
	if v.Kind != types.KindInt {
		diag.Error(r, diag.TypeMismatch, exprSpan(expr), "array size must be a constant Int")
		return 0, false
	}
	if v.I < 0 {
		diag.Error(r, diag.TypeNegativeArraySize, exprSpan(expr), "array size must not be negative")
		return 0, false
	}
	return uint32(v.I), true
}

func exprSpan(e ast.Expr) source.Span {
	if e == nil {
		return source.Span{}
	}
	return e.Span()
}
