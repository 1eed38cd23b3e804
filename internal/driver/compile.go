// Package driver orchestrates the compiler pipeline: load the module
// graph (C4), seed symbol tables and specializations (C5-C8), run the
// fixed point, and emit IR (C9) — or stop short and report why, per
// spec.md §5's phase-ordered, abort-on-error discipline.
package driver

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/nanov/jsasta/internal/backend/llvm"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/mono"
	"github.com/nanov/jsasta/internal/parser"
	"github.com/nanov/jsasta/internal/project"
	"github.com/nanov/jsasta/internal/source"
	"github.com/nanov/jsasta/internal/types"
)

// ExitCode mirrors spec.md §6's CLI exit-code discipline.
type ExitCode int

const (
	ExitSuccess    ExitCode = 0
	ExitUsageError ExitCode = 1
	// ExitUnresolved covers a module/import/type-inference failure that
	// prevents progress entirely (file not found, unresolved import,
	// non-convergent fixed point) — distinct from ExitDiagnostics, which
	// covers a phase that completed but left diagnostics behind (a
	// detected cyclic import, a type mismatch, a parse error).
	ExitUnresolved  ExitCode = 404
	ExitDiagnostics ExitCode = 500
)

// Options configures one compile run, gathering every CLI flag spec.md
// §6 lists.
type Options struct {
	InputPath  string
	OutputPath string
	Debug      bool
	DebugMode  bool
	Verbose    bool
	Quiet      bool
	UseColor   bool
}

// Result is everything a caller (the CLI, or a test) might want back
// from one compile run.
type Result struct {
	ExitCode ExitCode
	Bag      *diag.Bag
	Files    *source.FileSet
	IR       string
}

// Run executes the full pipeline against opts, writing progress to
// progress (suppressed in quiet mode) and the final diagnostic render
// to diagsOut. It never writes the IR file itself on the caller's
// behalf beyond what WriteOutput does — callers decide when/whether to
// persist Result.IR.
func Run(opts Options, progress, diagsOut io.Writer) Result {
	runID := uuid.New()
	logProgress(progress, opts, "run %s: compiling %s", runID, opts.InputPath)

	fs := source.NewFileSet()
	bag := diag.NewBag()
	rep := diag.BagReporter{Bag: bag}

	canonical, err := project.NormalizeModulePath(opts.InputPath)
	if err != nil {
		diag.Error(rep, diag.ModuleIOFailure, source.Span{}, fmt.Sprintf("invalid entry path %q: %v", opts.InputPath, err))
		return finish(bag, fs, "", diagsOut, opts)
	}

	if _, statErr := os.Stat(opts.InputPath); statErr != nil {
		diag.Error(rep, diag.ModuleIOFailure, source.Span{}, fmt.Sprintf("cannot read %q: %v", opts.InputPath, statErr))
		return finish(bag, fs, "", diagsOut, opts)
	}

	logProgress(progress, opts, "loading module graph from %s", opts.InputPath)
	graph := project.Load(opts.InputPath, fs, parser.New(), rep)
	if bag.HasErrors() {
		return finish(bag, fs, "", diagsOut, opts)
	}

	logProgress(progress, opts, "seeding symbol tables and running the specialization fixed point")
	interner := types.NewInterner()
	prog := mono.Seed(graph, canonical, interner, rep)
	if bag.HasErrors() {
		return finish(bag, fs, "", diagsOut, opts)
	}

	mono.Run(prog, rep)
	if bag.HasErrors() {
		return finish(bag, fs, "", diagsOut, opts)
	}

	if opts.Verbose {
		logProgress(progress, opts, "%s specialization(s) discovered", humanize.Comma(int64(len(prog.AllSpecs))))
		for _, s := range prog.AllSpecs {
			logProgress(progress, opts, "  %s", s.MangledName)
		}
	}

	logProgress(progress, opts, "emitting IR to %s", opts.OutputPath)
	ir, err := llvm.Emit(prog, llvm.Options{Debug: opts.Debug, DebugMode: opts.DebugMode, Files: fs})
	if err != nil {
		diag.Error(rep, diag.TypeInternalNonConvergence, source.Span{}, fmt.Sprintf("codegen: %v", err))
		return finish(bag, fs, "", diagsOut, opts)
	}

	return finish(bag, fs, ir, diagsOut, opts)
}

// WriteOutput persists the emitted IR to opts.OutputPath (defaulting to
// output.ll per spec.md §6), refusing to write on any ERROR per spec.md
// §7's "on any ERROR the compiler writes no IR file" rule.
func WriteOutput(opts Options, res Result) error {
	if res.Bag.HasErrors() || res.IR == "" {
		return nil
	}
	path := opts.OutputPath
	if path == "" {
		path = "output.ll"
	}
	return os.WriteFile(path, []byte(res.IR), 0o644)
}

func finish(bag *diag.Bag, fs *source.FileSet, ir string, diagsOut io.Writer, opts Options) Result {
	bag.Sort()
	if !opts.Quiet {
		diag.Render(diagsOut, bag.Items(), fs, opts.UseColor)
	}
	return Result{ExitCode: exitCodeFor(bag), Bag: bag, Files: fs, IR: ir}
}

// exitCodeFor maps the bag's worst diagnostic to spec.md §6's exit-code
// scheme. A cyclic import is a completed module-phase diagnosis (spec.md
// §8 scenario S4 exits 500); an unresolved import, an unreadable file,
// or the fixed point failing to converge are failures that block
// further progress entirely and exit 404.
func exitCodeFor(bag *diag.Bag) ExitCode {
	if !bag.HasErrors() {
		return ExitSuccess
	}
	for _, d := range bag.Items() {
		switch d.Code {
		case diag.ModuleIOFailure, diag.ModuleUnresolvedDep, diag.TypeInternalNonConvergence:
			return ExitUnresolved
		}
	}
	return ExitDiagnostics
}

// logProgress writes a per-phase progress line (spec.md §7: "Verbose
// mode additionally prints per-phase progress... Quiet mode suppresses
// non-error progress") — gated on Verbose, never on Quiet alone, since
// plain default-mode runs print nothing beyond the final diagnostics.
func logProgress(w io.Writer, opts Options, format string, args ...any) {
	if !opts.Verbose || opts.Quiet || w == nil {
		return
	}
	fmt.Fprintf(w, format+"\n", args...)
}
