// Package parser is the other half of C3: it turns a lexer's token
// stream into an *ast.File plus parse diagnostics (E2xx), implementing
// exactly the grammar spec.md §6 lists. internal/project depends only
// on the project.Parser interface; this package is the concrete
// implementation wired in by internal/driver.
package parser

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/lexer"
	"github.com/nanov/jsasta/internal/source"
	"github.com/nanov/jsasta/internal/token"
)

// Parser recursive-descent parses one file's token stream.
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	rep  diag.Reporter
	bag  *diag.Bag

	cur  token.Token
	prev token.Token
}

// New is the project.Parser-shaped entry point: parse file's content
// into an ast.File plus a diagnostic bag.
func New() *Parser { return &Parser{} }

// Parse implements project.Parser.
func (p *Parser) Parse(fileID source.FileID, path string, content []byte) (*ast.File, *diag.Bag) {
	f := &source.File{ID: fileID, Path: path, Content: content}
	bag := diag.NewBag()
	rep := diag.BagReporter{Bag: bag}
	pp := &Parser{lx: lexer.New(f, rep), file: f, rep: rep, bag: bag}
	pp.advance()
	return pp.parseFile(path, fileID), bag
}

func (p *Parser) advance() {
	p.prev = p.cur
	p.cur = p.lx.Next()
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) accept(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind, code diag.Code, what string) bool {
	if p.accept(k) {
		return true
	}
	diag.Error(p.rep, code, p.cur.Span, "expected "+what+", found "+p.cur.Kind.String())
	return false
}

func (p *Parser) span(from lexer.Mark) source.Span {
	return source.Span{File: p.file.ID, Start: uint32(from), End: p.prev.Span.End}
}

// synchronize skips tokens until a statement boundary, to recover from
// a parse error and keep reporting the rest of the file's diagnostics
// in one run (spec.md §4.1: "so the user sees all parse errors in one
// run" — the same goal applied one level down, within a file).
func (p *Parser) synchronize() {
	for !p.at(token.EOF) {
		if p.prev.Kind == token.Semicolon || p.prev.Kind == token.RBrace {
			return
		}
		switch p.cur.Kind {
		case token.KwVar, token.KwLet, token.KwConst, token.KwIf, token.KwWhile,
			token.KwFor, token.KwReturn, token.KwFunction, token.KwStruct, token.KwImport:
			return
		}
		p.advance()
	}
}

func (p *Parser) parseFile(path string, fileID source.FileID) *ast.File {
	var imports []*ast.ImportDecl
	var stmts []ast.Stmt

	for !p.at(token.EOF) {
		s := p.parseTopLevel()
		if s == nil {
			continue
		}
		stmts = append(stmts, s)
		if imp, ok := s.(*ast.ImportDecl); ok {
			imports = append(imports, imp)
		}
	}
	return ast.NewFile(path, fileID, imports, stmts)
}

func (p *Parser) parseTopLevel() ast.Stmt {
	switch p.cur.Kind {
	case token.KwImport:
		return p.parseImport()
	case token.KwFunction:
		return p.parseFunction()
	case token.KwStruct:
		return p.parseStruct()
	default:
		return p.parseStmt()
	}
}

func (p *Parser) parseImport() ast.Stmt {
	from := p.markOff()
	p.advance() // 'import'
	pathTok := p.cur
	if !p.expect(token.StringLit, diag.ParseExpectExpression, "a string import path") {
		p.synchronize()
		return nil
	}
	p.accept(token.Semicolon)
	return ast.NewImportDecl(p.span(from), pathTok.Text)
}

func (p *Parser) markOff() lexer.Mark { return lexer.Mark(p.cur.Span.Start) }
