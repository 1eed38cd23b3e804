package mono

import (
	"bytes"
	"testing"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/parser"
	"github.com/nanov/jsasta/internal/project"
	"github.com/nanov/jsasta/internal/source"
	"github.com/nanov/jsasta/internal/types"
	"github.com/stretchr/testify/require"
)

// buildProgram loads a single-module source through the real C3/C4
// pipeline, then runs C8's Seed+Run against it, mirroring spec.md §8's
// end-to-end scenarios.
func buildProgram(t *testing.T, src string) (*Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fs.AddVirtual("main.jsa", []byte(src))

	bag := diag.NewBag()
	rep := diag.BagReporter{Bag: bag}
	graph := project.Load("main.jsa", fs, parser.New(), rep)
	require.False(t, bag.HasErrors(), "load diagnostics: %+v", bag.Items())

	interner := types.NewInterner()
	prog := Seed(graph, "main", interner, rep)
	Run(prog, rep)
	return prog, bag
}

func specsOf(t *testing.T, prog *Program, name string) []*Specialization {
	t.Helper()
	for _, fi := range prog.AllFuncs {
		if fi.Decl.Name == name {
			return fi.Specs
		}
	}
	t.Fatalf("no function named %q was seeded", name)
	return nil
}

// S1: arithmetic overload. add(a,b){return a+b;} called once with Ints
// and once with Doubles must produce two distinct specializations.
func TestArithmeticOverloadSpecializesPerCallSite(t *testing.T) {
	prog, bag := buildProgram(t, `
function add(a, b) {
	return a + b;
}
var i = add(1, 2);
var d = add(1.5, 2.5);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	specs := specsOf(t, prog, "add")
	require.Len(t, specs, 2)

	names := map[string]bool{}
	for _, s := range specs {
		names[s.MangledName] = true
	}
	require.True(t, names["main_add_int_int"], "got %v", names)
	require.True(t, names["main_add_double_double"], "got %v", names)
}

// S2: recursive fib(n) specializes once for Int and converges despite
// the two recursive calls inside its own still-unresolved body.
func TestRecursiveFibConverges(t *testing.T) {
	prog, bag := buildProgram(t, `
function fib(n) {
	if (n < 2) {
		return n;
	}
	return fib(n - 1) + fib(n - 2);
}
var r = fib(10);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	specs := specsOf(t, prog, "fib")
	require.Len(t, specs, 1)
	require.Equal(t, "main_fib_int", specs[0].MangledName)
	b := prog.Interner.Builtins()
	require.Equal(t, b.Int, specs[0].ReturnType)
}

// S3: the same function called once with Strings and once with numeric
// arguments must specialize distinctly rather than unify.
func TestStringVsNumericOverload(t *testing.T) {
	prog, bag := buildProgram(t, `
function g(x, y) {
	return x + y;
}
var s = g("a", "b");
var n = g(1, 2);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	specs := specsOf(t, prog, "g")
	require.Len(t, specs, 2)
	names := map[string]bool{}
	for _, s := range specs {
		names[s.MangledName] = true
	}
	require.True(t, names["main_g_str_str"], "got %v", names)
	require.True(t, names["main_g_int_int"], "got %v", names)
}

// console.log is a variadic built-in, not a user call: it must never
// create a specialization even though it parses as an ordinary call.
func TestConsoleLogDoesNotSpecialize(t *testing.T) {
	prog, bag := buildProgram(t, `
console.log("hi", 1, 2.5, true);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())
	require.Empty(t, prog.AllSpecs)
}

// A compound assignment that widens a local's type (spec.md §4.2) must
// leave the widened type recorded on the originating VarDecl itself,
// not just on the scope binding, so codegen can size the local's stack
// slot for the final type rather than the initializer's.
func TestCompoundAssignWidensVarDeclBindingType(t *testing.T) {
	prog, bag := buildProgram(t, `
function f() {
	var x = 1;
	x += 2.5;
	return x;
}
var r = f();
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	specs := specsOf(t, prog, "f")
	require.Len(t, specs, 1)

	decl, ok := specs[0].Body.Stmts[0].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "x", decl.Name)
	require.Equal(t, prog.Interner.Builtins().Double, decl.BindingType)
}

// S6 (const array size): a fixed-size Array(N) sized by a resolved
// module-level const compiles cleanly, with Int chosen as the array's
// element type regardless of what's later stored into it.
func TestConstArraySizeResolves(t *testing.T) {
	prog, bag := buildProgram(t, `
const N = 3;
var a = Array(N);
a[2] = 7;
console.log(a[2]);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())
	require.Empty(t, prog.AllSpecs)
}

// S6 negative branch: a negative const array size is T313, reported
// against the Array(N) call site, not the const declaration itself.
func TestConstArraySizeRejectsNegative(t *testing.T) {
	_, bag := buildProgram(t, `
const N = -1;
var a = Array(N);
`)
	require.True(t, bag.HasErrors())
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.TypeNegativeArraySize {
			found = true
		}
	}
	require.True(t, found, "%+v", bag.Items())
}

// S6 cycle branch: a const whose initializer refers to itself can never
// converge and is reported as T315, the same code module-level const
// cycles use.
func TestConstArraySizeRejectsSelfReferentialConst(t *testing.T) {
	_, bag := buildProgram(t, `
const N = N + 1;
var a = Array(N);
`)
	require.True(t, bag.HasErrors())
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.TypeConstCycle {
			found = true
		}
	}
	require.True(t, found, "%+v", bag.Items())
}

// Array(0) is explicitly legal (spec.md §5's boundary behaviors): an
// empty fixed-size array is not an error.
func TestArrayZeroSizeIsLegal(t *testing.T) {
	_, bag := buildProgram(t, `
var a = Array(0);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())
}

// A first-class function value carried through a variable must resolve
// indirect calls to the exact same specialization as a direct call.
func TestFirstClassFunctionResolvesSameSpecialization(t *testing.T) {
	prog, bag := buildProgram(t, `
function inc(n) {
	return n + 1;
}
var f = inc;
var a = inc(1);
var b = f(2);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())
	specs := specsOf(t, prog, "inc")
	require.Len(t, specs, 1)
}

func TestDumpRoundTrips(t *testing.T) {
	prog, bag := buildProgram(t, `
function add(a, b) {
	return a + b;
}
var i = add(1, 2);
`)
	require.False(t, bag.HasErrors())

	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, prog))
	d, err := ReadDump(&buf)
	require.NoError(t, err)
	require.Equal(t, dumpSchemaVersion, d.Schema)
	require.Len(t, d.Funcs, 1)
	require.Equal(t, "main.add", d.Funcs[0].QualifiedName)
	require.Len(t, d.Funcs[0].Specs, 1)
	require.Equal(t, "main_add_int_int", d.Funcs[0].Specs[0].MangledName)
}
