package project

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/source"
)

// Parser is the boundary to C3, the opaque lexer/parser collaborator
// (spec.md §1: "the lexer and parser [are] treated as an opaque
// function producing an AST plus parse diagnostics"). The loader
// depends only on this interface, never on internal/parser directly,
// so C4 stays decoupled from the concrete tokenizer.
type Parser interface {
	Parse(fileID source.FileID, path string, content []byte) (*ast.File, *diag.Bag)
}
