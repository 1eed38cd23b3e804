package project

import (
	"testing"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/source"
	"github.com/stretchr/testify/require"
)

// fakeParser maps a canonical module path to a pre-built AST, standing
// in for the real lexer/parser collaborator (C3) in these tests.
type fakeParser struct {
	files map[string]*ast.File
}

func (p *fakeParser) Parse(fileID source.FileID, path string, content []byte) (*ast.File, *diag.Bag) {
	if f, ok := p.files[path]; ok {
		return f, diag.NewBag()
	}
	return ast.NewFile(path, fileID, nil, nil), diag.NewBag()
}

func fileWithImports(name string, imports ...string) *ast.File {
	var decls []*ast.ImportDecl
	for _, imp := range imports {
		decls = append(decls, ast.NewImportDecl(source.Span{}, imp))
	}
	return ast.NewFile(name, 0, decls, nil)
}

// virtualFileSet seeds a FileSet with in-memory content under disk-path
// keys (FileSet.Load returns the already-registered id for a known
// path instead of touching the real filesystem), so these tests never
// require actual files on disk.
func virtualFileSet(paths ...string) *source.FileSet {
	fs := source.NewFileSet()
	for _, p := range paths {
		fs.AddVirtual(p, nil)
	}
	return fs
}

func TestLoadDetectsCycle(t *testing.T) {
	parser := &fakeParser{files: map[string]*ast.File{
		"a": fileWithImports("a", "b"),
		"b": fileWithImports("b", "a"),
	}}
	fs := virtualFileSet("a.jsa", "b.jsa")

	bag := diag.NewBag()
	rep := diag.BagReporter{Bag: bag}
	g := Load("a.jsa", fs, parser, rep)

	require.True(t, bag.HasErrors())
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ModuleCyclicImport {
			found = true
		}
	}
	require.True(t, found)
	require.NotNil(t, g)
}

func TestLoadOrdersDependenciesFirst(t *testing.T) {
	parser := &fakeParser{files: map[string]*ast.File{
		"a": fileWithImports("a", "b"),
		"b": fileWithImports("b"),
	}}
	fs := virtualFileSet("a.jsa", "b.jsa")

	bag := diag.NewBag()
	rep := diag.BagReporter{Bag: bag}
	g := Load("a.jsa", fs, parser, rep)

	require.False(t, bag.HasErrors())
	require.Equal(t, []string{"b", "a"}, g.Order)
}

func TestLoadReportsIOFailure(t *testing.T) {
	parser := &fakeParser{files: map[string]*ast.File{}}
	fs := source.NewFileSet()

	bag := diag.NewBag()
	rep := diag.BagReporter{Bag: bag}
	Load("missing.jsa", fs, parser, rep)

	require.True(t, bag.HasErrors())
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ModuleIOFailure {
			found = true
		}
	}
	require.True(t, found)
}
