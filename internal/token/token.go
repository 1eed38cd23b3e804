package token

import "github.com/nanov/jsasta/internal/source"

// Token is a single lexed token with its location and literal text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, DoubleLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}
