package lexer

import (
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/source"
	"github.com/nanov/jsasta/internal/token"
)

// Lexer converts one file's content into a stream of tokens, skipping
// whitespace and comments between them. There is no trivia-preserving
// leading-attachment step, unlike the teacher's Lexer — nothing
// downstream of C3 needs comments, since this compiler has no
// formatter or language server (spec.md §1 Non-goals).
type Lexer struct {
	file   *source.File
	cursor Cursor
	rep    diag.Reporter
	look   *token.Token
}

// New creates a Lexer for file, reporting lex errors through rep.
func New(file *source.File, rep diag.Reporter) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), rep: rep}
}

// Next returns the next significant token; EOF is returned repeatedly
// once reached.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperator()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			lx.cursor.Bump()
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && !(lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/') {
				lx.cursor.Bump()
			}
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) errf(code diag.Code, span source.Span, msg string) {
	if lx.rep != nil {
		diag.Error(lx.rep, code, span, msg)
	}
}
