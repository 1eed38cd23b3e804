// Package llvm implements C9: lowering a converged mono.Program to
// textual LLVM-style IR. Every reachable specialization (spec.md §4.5:
// "emitted... in the order specializations were discovered") becomes
// one function named after its mangled symbol; the entry module's
// executable statements become the module's start function.
package llvm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nanov/jsasta/internal/mono"
	"github.com/nanov/jsasta/internal/source"
	"github.com/nanov/jsasta/internal/types"
)

// EntryFuncName is the emitted IR entry point (spec.md §4.5: "entry
// module's top-level statements lower into a dedicated start
// function").
const EntryFuncName = "jsasta_start"

// Options controls the two codegen-visible CLI flags of spec.md §6:
// -g/--debug (source-location comments on every emitted function) and
// -d/--debug-mode (runtime assertion built-ins, currently division by
// zero guards ahead of sdiv/srem/fdiv/frem).
type Options struct {
	Debug     bool
	DebugMode bool

	// Files resolves a span's file:line:col for -g comments. Optional —
	// when nil, -g falls back to the span's raw file-id/byte-offset
	// form rather than failing.
	Files *source.FileSet
}

// Emitter carries the textual buffer and every piece of bookkeeping one
// emission pass needs: interned type descriptors, deduplicated string
// constants, and a running counter for anonymous globals.
type Emitter struct {
	prog    *mono.Program
	types   *types.Interner
	opts    Options
	buf     strings.Builder
	strings map[string]string // literal -> global name
	strSeq  int
}

// Emit lowers a fully converged program (mono.Run already called) to
// its textual IR. Returns an error only for an internal inconsistency
// (an expression that reached codegen still Unknown-typed means C8
// didn't actually converge, which Run's T316/T317 diagnostics should
// already have caught).
func Emit(prog *mono.Program, opts Options) (string, error) {
	e := &Emitter{prog: prog, types: prog.Interner, opts: opts, strings: map[string]string{}}

	e.emitPreamble()
	e.emitRuntimeDecls()

	if err := e.collectStringConsts(); err != nil {
		return "", err
	}
	e.emitStringConsts()

	for _, spec := range prog.AllSpecs {
		if err := e.emitSpecialization(spec); err != nil {
			return "", fmt.Errorf("emitting %s: %w", spec.MangledName, err)
		}
	}
	if err := e.emitEntry(); err != nil {
		return "", fmt.Errorf("emitting entry: %w", err)
	}
	return e.buf.String(), nil
}

func (e *Emitter) emitPreamble() {
	e.buf.WriteString("target triple = \"x86_64-linux-gnu\"\n\n")
}

// emitRuntimeDecls declares the small C-style runtime this language's
// IR leans on: allocation, string concatenation/comparison/indexing,
// and the variadic console.log builtin (spec.md §6).
func (e *Emitter) emitRuntimeDecls() {
	decls := []string{
		"declare ptr @jsa_alloc(i64)",
		"declare ptr @jsa_array_new(i64, i64)",
		"declare ptr @jsa_object_new(i64)",
		"declare i64 @jsa_object_get(ptr, i64)",
		"declare void @jsa_object_set_field(ptr, i64, i64)",
		"declare ptr @jsa_string_concat(ptr, ptr)",
		"declare i1 @jsa_string_eq(ptr, ptr)",
		"declare i64 @jsa_string_cmp(ptr, ptr)",
		"declare ptr @jsa_string_index(ptr, i64)",
		"declare ptr @jsa_string_index_set(ptr, i64, ptr, i1)",
		"declare void @jsa_console_log_int(i64)",
		"declare void @jsa_console_log_double(double)",
		"declare void @jsa_console_log_bool(i1)",
		"declare void @jsa_console_log_string(ptr)",
	}
	if e.opts.DebugMode {
		decls = append(decls,
			"declare void @jsa_assert_nonzero_i64(i64)",
			"declare void @jsa_assert_nonzero_f64(double)",
		)
	}
	for _, d := range decls {
		e.buf.WriteString(d)
		e.buf.WriteByte('\n')
	}
	e.buf.WriteByte('\n')
}

// debugLoc renders a -g source-location comment for span, or "" when
// -g wasn't requested.
func (e *Emitter) debugLoc(span source.Span) string {
	if !e.opts.Debug {
		return ""
	}
	if e.opts.Files == nil {
		return fmt.Sprintf("  ; loc: %s\n", span.String())
	}
	start, _ := e.opts.Files.Resolve(span)
	path := e.opts.Files.Get(span.File).Path
	return fmt.Sprintf("  ; loc: %s:%d:%d\n", path, start.Line, start.Col)
}

// funcEmitter carries one function body's mutable emission state: the
// temp/label counters and which locals already have an alloca slot.
type funcEmitter struct {
	e          *Emitter
	tmp        int
	label      int
	returnType string
}

type localSlot struct {
	ptr string
	ty  string

	// wasWrittenPtr is non-empty only for a String-kind binding: the
	// address of an i1 flag that starts false and flips true the first
	// time this binding is targeted by an index-write. emitStoreToLvalue
	// consults it to implement the copy-on-write contract of spec.md
	// §4.5/§9 ("tracking a 'was-written' flag per binding at the IR
	// level").
	wasWrittenPtr string
}

func (fe *funcEmitter) nextTemp() string {
	fe.tmp++
	return fmt.Sprintf("%%t%d", fe.tmp)
}

func (fe *funcEmitter) nextLabel(prefix string) string {
	fe.label++
	return fmt.Sprintf("%s%d", prefix, fe.label)
}

func (fe *funcEmitter) emitf(format string, args ...any) {
	fmt.Fprintf(&fe.e.buf, format, args...)
}

// sortedStringLiterals returns every discovered string-literal global
// name in a deterministic order, purely so the emitted IR is stable
// across runs (spec.md §8's invariant that identical input programs
// produce byte-identical IR).
func (e *Emitter) sortedStringLiterals() []string {
	lits := make([]string, 0, len(e.strings))
	for lit := range e.strings {
		lits = append(lits, lit)
	}
	sort.Strings(lits)
	return lits
}
