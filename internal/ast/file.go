package ast

import "github.com/nanov/jsasta/internal/source"

// File is the parsed AST for one source module (spec.md §3: "Module
// owns: canonical path, parsed AST, ...").
type File struct {
	Path    string
	FileID  source.FileID
	Imports []*ImportDecl
	Stmts   []Stmt // top-level statements in source order, imports included
}

// NewFile assembles a File from its import and statement lists. Stmts
// should already include the ImportDecls (they appear in source
// order); Imports is redundant with that but kept as a fast-path list
// since C4 only ever needs the imports, not the full statement walk.
func NewFile(path string, fileID source.FileID, imports []*ImportDecl, stmts []Stmt) *File {
	return &File{Path: path, FileID: fileID, Imports: imports, Stmts: stmts}
}

// TopLevelFuncs returns every function declared at module scope.
func (f *File) TopLevelFuncs() []*FunctionDecl {
	var out []*FunctionDecl
	for _, s := range f.Stmts {
		if fn, ok := s.(*FunctionDecl); ok {
			out = append(out, fn)
		}
	}
	return out
}

// TopLevelStructs returns every struct declared at module scope.
func (f *File) TopLevelStructs() []*StructDecl {
	var out []*StructDecl
	for _, s := range f.Stmts {
		if sd, ok := s.(*StructDecl); ok {
			out = append(out, sd)
		}
	}
	return out
}

// TopLevelConsts returns every const declared at module scope.
func (f *File) TopLevelConsts() []*ConstDecl {
	var out []*ConstDecl
	for _, s := range f.Stmts {
		if cd, ok := s.(*ConstDecl); ok {
			out = append(out, cd)
		}
	}
	return out
}

// Executable returns the top-level statements that are neither imports
// nor function/struct declarations — the entry module's "main body"
// internal/backend/llvm lowers into the IR entry function.
func (f *File) Executable() []Stmt {
	var out []Stmt
	for _, s := range f.Stmts {
		switch s.(type) {
		case *ImportDecl, *FunctionDecl, *StructDecl:
			continue
		default:
			out = append(out, s)
		}
	}
	return out
}
