package project

import (
	"fmt"
	"strings"

	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/source"
)

// loader carries the mutable state of one DFS traversal: the graph
// being built and the current recursion stack, used both to detect a
// Grey-on-Grey revisit and to slice out the exact back-chain that
// witnesses the cycle.
type loader struct {
	fs     *source.FileSet
	parser Parser
	rep    diag.Reporter
	graph  *Graph
	stack  []string
}

// Load builds the module graph rooted at entryPath (spec.md §4.1:
// "load(entry_path) -> ModuleGraph | ErrorSet"). Diagnostics (I/O
// failures, cyclic imports, unresolved imports, parse errors) are
// reported through rep; Load itself never returns an error for
// recoverable problems, matching "parse diagnostics accumulate in the
// sink but do not abort traversal."
func Load(entryPath string, fs *source.FileSet, parser Parser, rep diag.Reporter) *Graph {
	l := &loader{
		fs:     fs,
		parser: parser,
		rep:    rep,
		graph:  &Graph{Modules: make(map[string]*ModuleMeta)},
	}

	canonical, err := NormalizeModulePath(entryPath)
	if err != nil {
		diag.Error(rep, diag.ModuleIOFailure, source.Span{}, fmt.Sprintf("invalid entry path %q: %v", entryPath, err))
		return l.graph
	}

	l.visit(canonical, entryPath)
	return l.graph
}

// visit implements the tri-colour DFS of spec.md §4.1: canonicalize,
// check the registry (Grey => cycle, Black => reuse), else parse, mark
// Grey, recurse into imports, mark Black, and append to the order.
func (l *loader) visit(canonical, diskPath string) *ModuleMeta {
	if m, ok := l.graph.Modules[canonical]; ok {
		switch m.Color {
		case Grey:
			l.reportCycle(canonical)
			return m
		case Black:
			return m
		}
	}

	fileID, err := l.fs.Load(diskPath)
	if err != nil {
		diag.Error(l.rep, diag.ModuleIOFailure, source.Span{},
			fmt.Sprintf("cannot read module %q: %v", canonical, err))
		return nil
	}
	file := l.fs.Get(fileID)

	m := &ModuleMeta{
		Path:          canonical,
		Dir:           dirOf(canonical),
		FileID:        fileID,
		Color:         Grey,
		ContentDigest: Digest(file.Hash),
	}
	l.graph.Modules[canonical] = m
	l.stack = append(l.stack, canonical)

	astFile, parseBag := l.parser.Parse(fileID, canonical, file.Content)
	if parseBag != nil {
		for _, d := range parseBag.Items() {
			l.rep.Report(d.Severity, d.Code, d.Primary, d.Message, d.Notes...)
		}
	}
	m.AST = astFile

	var depDigests []Digest
	if astFile != nil {
		for _, imp := range astFile.Imports {
			resolved, err := ResolveImportPath(m.Dir, imp.Path)
			if err != nil {
				diag.Error(l.rep, diag.ModuleUnresolvedDep, imp.Span(),
					fmt.Sprintf("unresolved import %q: %v", imp.Path, err))
				continue
			}
			m.Imports = append(m.Imports, ImportEdge{SourcePath: resolved, Span: imp.Span()})

			dep := l.visit(resolved, resolved+Extension)
			if dep != nil {
				depDigests = append(depDigests, dep.ModuleDigest)
			}
		}
	}

	l.stack = l.stack[:len(l.stack)-1]
	m.Color = Black
	m.ModuleDigest = CombineDigest(m.ContentDigest, depDigests...)
	l.graph.Order = append(l.graph.Order, canonical)
	return m
}

// reportCycle emits M4002 with the shortest witnessing path: the
// suffix of the current DFS stack from the first occurrence of target
// down to (and back to) target itself, which in a DFS tree is exactly
// the back-edge's cycle.
func (l *loader) reportCycle(target string) {
	start := 0
	for i, p := range l.stack {
		if p == target {
			start = i
			break
		}
	}
	chain := append(append([]string(nil), l.stack[start:]...), target)
	diag.Error(l.rep, diag.ModuleCyclicImport, source.Span{},
		"cyclic import: "+strings.Join(chain, " -> "))
}
