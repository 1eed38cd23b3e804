// Package project implements C4, the module graph: import discovery,
// cycle detection, and dependency-first ordering (spec.md §4.1).
package project

import (
	"path"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/source"
)

// Extension is the on-disk suffix for a module file. Import paths in
// source are extensionless; the loader appends it when resolving to a
// disk path, mirroring the teacher's ".sg" convention.
const Extension = ".jsa"

// Color is a module's DFS processing state (spec.md §3: "a processing
// colour {White, Grey, Black} for cycle detection").
type Color uint8

const (
	White Color = iota
	Grey
	Black
)

// ImportEdge is one resolved import (spec.md §3:
// "ImportEdge {local_name, source_path, origin_symbol}"). Since the
// concrete grammar (spec.md §6) has no aliasing syntax — `import
// "path";` only — every top-level declaration of the imported module
// is brought in under its own name, so LocalName and OriginName always
// match; internal/mono's seedImports copies each of the imported
// module's own root-scope bindings into the importer's root scope
// rather than creating symbols.Import bindings.
type ImportEdge struct {
	SourcePath string
	Span       source.Span
}

// ModuleMeta owns one module's identity and parsed form: canonical
// path, parsed AST, ImportEdge list, processing colour and digests. Its
// type context and root scope are held by internal/mono's per-module
// context, not here.
type ModuleMeta struct {
	Path    string // canonical, extensionless
	Dir     string // canonical directory of Path
	FileID  source.FileID
	AST     *ast.File
	Imports []ImportEdge
	Color   Color

	ContentDigest Digest
	ModuleDigest  Digest
}

// Graph is the fully loaded module set, in dependency-first order.
type Graph struct {
	Modules map[string]*ModuleMeta
	Order   []string // canonical paths, dependencies before dependents
}

// Get looks a module up by its canonical path.
func (g *Graph) Get(canonicalPath string) (*ModuleMeta, bool) {
	m, ok := g.Modules[canonicalPath]
	return m, ok
}

func dirOf(canonicalPath string) string {
	d := path.Dir(canonicalPath)
	if d == "." {
		return ""
	}
	return d
}
