package consteval

import (
	"testing"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/source"
	"github.com/stretchr/testify/require"
)

func sp() source.Span { return source.Span{} }

func TestEvaluateArithmetic(t *testing.T) {
	// 2 + 3 * 4
	expr := ast.NewBinary(sp(), ast.OpAdd,
		ast.NewIntLit(sp(), 2),
		ast.NewBinary(sp(), ast.OpMul, ast.NewIntLit(sp(), 3), ast.NewIntLit(sp(), 4)),
	)
	v, err := Evaluate(expr, mapEnv{})
	require.Nil(t, err)
	require.Equal(t, IntValue(14), v)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	expr := ast.NewBinary(sp(), ast.OpDiv, ast.NewIntLit(sp(), 1), ast.NewIntLit(sp(), 0))
	_, err := Evaluate(expr, mapEnv{})
	require.NotNil(t, err)
	require.Equal(t, ErrDivisionByZero, err.Kind)
}

func TestEvaluateIntOverflow(t *testing.T) {
	expr := ast.NewBinary(sp(), ast.OpMul, ast.NewIntLit(sp(), 1<<20), ast.NewIntLit(sp(), 1<<20))
	_, err := Evaluate(expr, mapEnv{})
	require.NotNil(t, err)
	require.Equal(t, ErrOverflow, err.Kind)
}

func TestEvaluateStringConcatWithNumeric(t *testing.T) {
	expr := ast.NewBinary(sp(), ast.OpAdd, ast.NewStringLit(sp(), "n="), ast.NewIntLit(sp(), 7))
	v, err := Evaluate(expr, mapEnv{})
	require.Nil(t, err)
	require.Equal(t, StringValue("n=7"), v)
}

func TestEvaluateConstReference(t *testing.T) {
	env := mapEnv{"N": IntValue(5)}
	expr := ast.NewBinary(sp(), ast.OpMul, ast.NewIdent(sp(), "N"), ast.NewIntLit(sp(), 2))
	v, err := Evaluate(expr, env)
	require.Nil(t, err)
	require.Equal(t, IntValue(10), v)
}

func TestResolveChainAcrossConsts(t *testing.T) {
	pending := []Pending{
		{Name: "B", Init: ast.NewBinary(sp(), ast.OpAdd, ast.NewIdent(sp(), "A"), ast.NewIntLit(sp(), 1))},
		{Name: "A", Init: ast.NewIntLit(sp(), 10)},
	}
	bag := diag.NewBag()
	resolved := Resolve(pending, nil, bag)
	require.False(t, bag.HasErrors())
	require.Equal(t, IntValue(10), resolved["A"])
	require.Equal(t, IntValue(11), resolved["B"])
}

func TestResolveDetectsCycle(t *testing.T) {
	pending := []Pending{
		{Name: "A", Init: ast.NewIdent(sp(), "B")},
		{Name: "B", Init: ast.NewIdent(sp(), "A")},
	}
	bag := diag.NewBag()
	Resolve(pending, nil, bag)
	require.True(t, bag.HasErrors())
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.TypeConstCycle {
			found = true
		}
	}
	require.True(t, found)
}
