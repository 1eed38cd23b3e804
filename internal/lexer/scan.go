package lexer

import (
	"strconv"
	"strings"

	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/token"
)

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentCont(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(m)
	text := string(lx.file.Content[span.Start:span.End])
	if kw, ok := token.Lookup(text); ok {
		return token.Token{Kind: kw, Span: span, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}

func (lx *Lexer) scanNumber() token.Token {
	m := lx.cursor.Mark()
	isDouble := false
	for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && isDigit(lx.cursor.PeekAt(1)) {
		isDouble = true
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	span := lx.cursor.SpanFrom(m)
	text := string(lx.file.Content[span.Start:span.End])
	if isDouble {
		return token.Token{Kind: token.DoubleLit, Span: span, Text: text}
	}
	if _, err := strconv.ParseInt(text, 10, 32); err != nil {
		lx.errf(diag.ParseBadNumber, span, "integer literal out of range: "+text)
	}
	return token.Token{Kind: token.IntLit, Span: span, Text: text}
}

func (lx *Lexer) scanString() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	var b strings.Builder
	for {
		if lx.cursor.EOF() {
			span := lx.cursor.SpanFrom(m)
			lx.errf(diag.ParseUnterminatedString, span, "unterminated string literal")
			return token.Token{Kind: token.StringLit, Span: span, Text: b.String()}
		}
		ch := lx.cursor.Bump()
		if ch == '"' {
			break
		}
		if ch == '\\' {
			esc := lx.cursor.Bump()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(esc)
			}
			continue
		}
		b.WriteByte(ch)
	}
	return token.Token{Kind: token.StringLit, Span: lx.cursor.SpanFrom(m), Text: b.String()}
}

// two maps a two-byte lookahead to the Kind it forms when matched,
// checked before falling back to the corresponding one-byte Kind.
var two = map[string]token.Kind{
	"==": token.EqEq,
	"!=": token.BangEq,
	"<=": token.LtEq,
	">=": token.GtEq,
	"&&": token.AndAnd,
	"||": token.OrOr,
	">>": token.Shr,
	"+=": token.PlusAssign,
	"-=": token.MinusAssign,
	"*=": token.StarAssign,
	"/=": token.SlashAssign,
	"++": token.PlusPlus,
	"--": token.MinusMinus,
}

var one = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'&': token.Amp,
	'<': token.Lt,
	'>': token.Gt,
	'!': token.Bang,
	'?': token.Question,
	':': token.Colon,
	'=': token.Assign,
	',': token.Comma,
	'.': token.Dot,
	';': token.Semicolon,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
}

func (lx *Lexer) scanOperator() token.Token {
	m := lx.cursor.Mark()
	b0 := lx.cursor.Bump()
	b1 := lx.cursor.Peek()
	if k, ok := two[string([]byte{b0, b1})]; ok {
		lx.cursor.Bump()
		span := lx.cursor.SpanFrom(m)
		return token.Token{Kind: k, Span: span, Text: string([]byte{b0, b1})}
	}
	if k, ok := one[b0]; ok {
		span := lx.cursor.SpanFrom(m)
		return token.Token{Kind: k, Span: span, Text: string(b0)}
	}
	span := lx.cursor.SpanFrom(m)
	lx.errf(diag.ParseUnexpectedToken, span, "unexpected character "+strconv.QuoteRune(rune(b0)))
	return token.Token{Kind: token.Invalid, Span: span, Text: string(b0)}
}
