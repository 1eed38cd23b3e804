package llvm

import (
	"strings"
	"testing"

	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/mono"
	"github.com/nanov/jsasta/internal/parser"
	"github.com/nanov/jsasta/internal/project"
	"github.com/nanov/jsasta/internal/source"
	"github.com/nanov/jsasta/internal/types"
	"github.com/stretchr/testify/require"
)

// buildProgram mirrors internal/mono's own helper: load a single-module
// source through the real C3/C4 pipeline, then run C8's Seed+Run.
func buildProgram(t *testing.T, src string) (*mono.Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fs.AddVirtual("main.jsa", []byte(src))

	bag := diag.NewBag()
	rep := diag.BagReporter{Bag: bag}
	graph := project.Load("main.jsa", fs, parser.New(), rep)
	require.False(t, bag.HasErrors(), "load diagnostics: %+v", bag.Items())

	interner := types.NewInterner()
	prog := mono.Seed(graph, "main", interner, rep)
	mono.Run(prog, rep)
	return prog, bag
}

func TestEmitProducesMangledFunctionsForEachSpecialization(t *testing.T) {
	prog, bag := buildProgram(t, `
function add(a, b) {
	return a + b;
}
var i = add(1, 2);
var d = add(1.5, 2.5);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{})
	require.NoError(t, err)
	require.Contains(t, ir, "define i64 @main_add_int_int(")
	require.Contains(t, ir, "define double @main_add_double_double(")
	require.Contains(t, ir, "define void @jsasta_start()")
}

func TestEmitRecursiveFib(t *testing.T) {
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

	ir, err := Emit(prog, Options{})
	require.NoError(t, err)
	require.Contains(t, ir, "define i64 @main_fib_int(i64 %arg.n)")
	require.Contains(t, ir, "call i64 @main_fib_int(")
}

func TestEmitStringVsNumericOverload(t *testing.T) {
	prog, bag := buildProgram(t, `
function g(x, y) {
	return x + y;
}
var s = g("a", "b");
var n = g(1, 2);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{})
	require.NoError(t, err)
	require.Contains(t, ir, "define ptr @main_g_str_str(")
	require.Contains(t, ir, "define i64 @main_g_int_int(")
	require.Contains(t, ir, "call ptr @jsa_string_concat(")
}

func TestEmitRuntimeDeclarationPreamble(t *testing.T) {
	prog, bag := buildProgram(t, `var x = 1;`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{})
	require.NoError(t, err)
	for _, decl := range []string{
		"declare ptr @jsa_alloc(i64)",
		"declare ptr @jsa_array_new(i64, i64)",
		"declare ptr @jsa_object_new(i64)",
		"declare void @jsa_console_log_int(i64)",
	} {
		require.Contains(t, ir, decl)
	}
	require.NotContains(t, ir, "jsa_assert_nonzero")
}

func TestEmitStringConstantsDeduplicated(t *testing.T) {
	prog, bag := buildProgram(t, `
console.log("hi");
console.log("hi");
console.log("bye");
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(ir, `c"hi\00"`))
	require.Equal(t, 1, strings.Count(ir, `c"bye\00"`))
}

func TestEmitDebugModeInsertsDivisionGuard(t *testing.T) {
	prog, bag := buildProgram(t, `
function div(a, b) {
	return a / b;
}
var r = div(4, 2);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{DebugMode: true})
	require.NoError(t, err)
	require.Contains(t, ir, "declare void @jsa_assert_nonzero_i64(i64)")
	require.Contains(t, ir, "call void @jsa_assert_nonzero_i64(")
}

func TestEmitDebugFlagAddsSourceLocationComments(t *testing.T) {
	prog, bag := buildProgram(t, `
function add(a, b) {
	return a + b;
}
var i = add(1, 2);
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{Debug: true})
	require.NoError(t, err)
	require.Contains(t, ir, "; loc:")
}

// A compound assignment that widens a local's type (spec.md §4.2: "Int
// += Double promotes the binding's type to Double") must allocate the
// slot at the widened type from the start and promote any
// narrower-typed value (the initializer, a later assignment's operand)
// to match — never mix a double operand into an `i64` instruction.
func TestEmitCompoundAssignWidensLocalSlot(t *testing.T) {
	prog, bag := buildProgram(t, `
function f() {
	var x = 1;
	x += 2.5;
	return x;
}
var r = f();
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{})
	require.NoError(t, err)
	require.Contains(t, ir, "alloca double")
	require.Contains(t, ir, "sitofp i64 1 to double")
	require.Contains(t, ir, "fadd double")
	require.NotContains(t, ir, "add i64 %")
}

// A bare re-assignment (no compound operator) widens just as a
// compound assignment does.
func TestEmitPlainReassignWidensLocalSlot(t *testing.T) {
	prog, bag := buildProgram(t, `
function f() {
	var x = 1;
	x = 2.5;
	return x;
}
var r = f();
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{})
	require.NoError(t, err)
	require.Contains(t, ir, "alloca double")
	require.Contains(t, ir, "sitofp i64 1 to double")
	require.Contains(t, ir, "store double 2.5")
}

// A string index-write must copy-on-write through the per-binding
// was-written flag and rebind the local's own slot to the (possibly
// reallocated) result, so a later read of the same binding observes the
// write (spec.md §4.5/§9).
func TestEmitStringIndexSetRebindsSlotAndTracksWasWritten(t *testing.T) {
	prog, bag := buildProgram(t, `
function f() {
	var s = "hello";
	s[0] = "H";
	console.log(s);
}
var r = f();
`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{})
	require.NoError(t, err)
	require.Contains(t, ir, "declare ptr @jsa_string_index_set(ptr, i64, ptr, i1)")
	require.Contains(t, ir, "alloca i1")
	require.Contains(t, ir, "store i1 0, ptr")
	require.Contains(t, ir, "call ptr @jsa_string_index_set(ptr %t")
	require.Contains(t, ir, "store i1 1, ptr")

	// the call's result must be stored back into s's own slot, not just
	// returned as the expression's value.
	callLine := ""
	for _, line := range strings.Split(ir, "\n") {
		if strings.Contains(line, "call ptr @jsa_string_index_set(") {
			callLine = line
			break
		}
	}
	require.NotEmpty(t, callLine, "IR: %s", ir)
	resultTemp := strings.TrimSpace(strings.SplitN(callLine, "=", 2)[0])
	require.Contains(t, ir, "store ptr "+resultTemp+", ptr %s.")
}

func TestEmitConsoleLogDoesNotEmitAFunction(t *testing.T) {
	prog, bag := buildProgram(t, `console.log("hi", 1, 2.5, true);`)
	require.False(t, bag.HasErrors(), "%+v", bag.Items())

	ir, err := Emit(prog, Options{})
	require.NoError(t, err)
	require.Contains(t, ir, "call void @jsa_console_log_string(")
	require.Contains(t, ir, "call void @jsa_console_log_int(")
	require.Contains(t, ir, "call void @jsa_console_log_double(")
	require.Contains(t, ir, "call void @jsa_console_log_bool(")
	require.Equal(t, 1, strings.Count(ir, "define "), "only the entry function is defined")
}
