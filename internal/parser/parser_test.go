package parser

import (
	"testing"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/source"
	"github.com/stretchr/testify/require"
)

func parseSrc(t *testing.T, src string) (*ast.File, int) {
	t.Helper()
	p := New()
	f, bag := p.Parse(source.FileID(1), "test.jsa", []byte(src))
	return f, bag.Len()
}

func TestParseFunctionAndReturn(t *testing.T) {
	f, nerr := parseSrc(t, `
		function add(a, b) {
			return a + b;
		}
	`)
	require.Equal(t, 0, nerr)
	require.Len(t, f.Stmts, 1)
	fn, ok := f.Stmts[0].(*ast.FunctionDecl)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name)
	require.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body.Stmts, 1)
	ret, ok := fn.Body.Stmts[0].(*ast.Return)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.OpAdd, bin.Op)
}

func TestParseImport(t *testing.T) {
	f, nerr := parseSrc(t, `import "util";`)
	require.Equal(t, 0, nerr)
	require.Len(t, f.Imports, 1)
	require.Equal(t, "util", f.Imports[0].Path)
}

func TestParseStructWithDefault(t *testing.T) {
	f, nerr := parseSrc(t, `
		struct Point {
			x: 0,
			y: 0
		}
	`)
	require.Equal(t, 0, nerr)
	st, ok := f.Stmts[0].(*ast.StructDecl)
	require.True(t, ok)
	require.Equal(t, "Point", st.Name)
	require.Len(t, st.Fields, 2)
	require.Equal(t, "x", st.Fields[0].Name)
	require.NotNil(t, st.Fields[0].Default)
}

func TestParseVarConstLetAndAssignment(t *testing.T) {
	f, nerr := parseSrc(t, `
		function f() {
			var x = 1;
			let y = 2;
			const N = 3;
			x += y;
			return x;
		}
	`)
	require.Equal(t, 0, nerr)
	fn := f.Stmts[0].(*ast.FunctionDecl)
	require.Len(t, fn.Body.Stmts, 5)

	vd, ok := fn.Body.Stmts[0].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, ast.DeclVar, vd.Kind)

	ld, ok := fn.Body.Stmts[1].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, ast.DeclLet, ld.Kind)

	_, ok = fn.Body.Stmts[2].(*ast.ConstDecl)
	require.True(t, ok)

	es, ok := fn.Body.Stmts[3].(*ast.ExprStmt)
	require.True(t, ok)
	asg, ok := es.X.(*ast.Assign)
	require.True(t, ok)
	require.NotNil(t, asg.Op)
	require.Equal(t, ast.OpAdd, *asg.Op)
}

func TestParseIfWhileFor(t *testing.T) {
	f, nerr := parseSrc(t, `
		function f() {
			if (1 < 2) {
				return 1;
			} else {
				return 2;
			}
			while (1) {
				return 1;
			}
			for (var i = 0; i < 10; i++) {
				return i;
			}
		}
	`)
	require.Equal(t, 0, nerr)
	fn := f.Stmts[0].(*ast.FunctionDecl)
	require.Len(t, fn.Body.Stmts, 3)

	ifs, ok := fn.Body.Stmts[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifs.Els)

	_, ok = fn.Body.Stmts[1].(*ast.While)
	require.True(t, ok)

	forS, ok := fn.Body.Stmts[2].(*ast.For)
	require.True(t, ok)
	require.NotNil(t, forS.Init)
	require.NotNil(t, forS.Cond)
	require.NotNil(t, forS.Post)
}

func TestParseExpressionPrecedence(t *testing.T) {
	f, nerr := parseSrc(t, `
		function f() {
			return 1 + 2 * 3;
		}
	`)
	require.Equal(t, 0, nerr)
	fn := f.Stmts[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.Return)
	top, ok := ret.Value.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.OpAdd, top.Op)
	_, ok = top.Left.(*ast.IntLit)
	require.True(t, ok)
	rhs, ok := top.Right.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.OpMul, rhs.Op)
}

func TestParseTernaryAndLogical(t *testing.T) {
	f, nerr := parseSrc(t, `
		function f() {
			return a && b || c ? 1 : 2;
		}
	`)
	require.Equal(t, 0, nerr)
	fn := f.Stmts[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.Return)
	tern, ok := ret.Value.(*ast.Ternary)
	require.True(t, ok)
	cond, ok := tern.Cond.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.OpOr, cond.Op)
}

func TestParsePostfixChain(t *testing.T) {
	f, nerr := parseSrc(t, `
		function f() {
			return obj.field[0].method(1, 2)++;
		}
	`)
	require.Equal(t, 0, nerr)
	fn := f.Stmts[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.Return)
	inc, ok := ret.Value.(*ast.IncDec)
	require.True(t, ok)
	require.True(t, inc.Postfix)
	_, ok = inc.Target.(*ast.Call)
	require.True(t, ok)
}

func TestParseArrayNewAndLiterals(t *testing.T) {
	f, nerr := parseSrc(t, `
		function f() {
			var a = Array(10);
			var b = [1, 2, 3];
			var c = { x: 1, y: 2 };
			return a;
		}
	`)
	require.Equal(t, 0, nerr)
	fn := f.Stmts[0].(*ast.FunctionDecl)

	a := fn.Body.Stmts[0].(*ast.VarDecl)
	_, ok := a.Init.(*ast.ArrayNew)
	require.True(t, ok)

	b := fn.Body.Stmts[1].(*ast.VarDecl)
	arr, ok := b.Init.(*ast.ArrayLit)
	require.True(t, ok)
	require.Len(t, arr.Elems, 3)

	c := fn.Body.Stmts[2].(*ast.VarDecl)
	obj, ok := c.Init.(*ast.ObjectLit)
	require.True(t, ok)
	require.Len(t, obj.Fields, 2)
	require.Equal(t, "x", obj.Fields[0].Name)
}

func TestParseReservedTypeNameRejected(t *testing.T) {
	_, nerr := parseSrc(t, `
		function f() {
			var int = 1;
			return int;
		}
	`)
	require.Greater(t, nerr, 0)
}

func TestParseMissingSemicolonReported(t *testing.T) {
	_, nerr := parseSrc(t, `
		function f() {
			var x = 1
			return x;
		}
	`)
	require.Greater(t, nerr, 0)
}
