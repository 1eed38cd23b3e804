// Package token defines the token vocabulary the lexer/parser
// collaborator (C3, spec.md §1 — "treated as an opaque function
// producing an AST plus parse diagnostics") uses, reduced from the
// teacher's much larger surface to exactly the grammar spec.md §6
// lists: no generics, no async/channel/contract keywords, no closures.
package token

// Kind categorizes a source token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident

	KwVar
	KwLet
	KwConst
	KwIf
	KwElse
	KwWhile
	KwFor
	KwReturn
	KwFunction
	KwStruct
	KwImport
	KwTrue
	KwFalse
	// Reserved type keywords: not usable as identifiers in declarations
	// (spec.md §6).
	KwInt
	KwDouble
	KwString
	KwBool
	KwVoid
	// KwArrayBuiltin is the `Array` identifier in call position, i.e.
	// the `Array(size)` builtin (spec.md §6). It lexes as a plain Ident;
	// the parser recognizes it by text, so it has no dedicated Kind —
	// kept here only as a documented non-keyword.

	IntLit
	DoubleLit
	StringLit

	Plus
	Minus
	Star
	Slash
	Percent
	Amp    // &
	Shr    // >>
	Lt
	Gt
	LtEq
	GtEq
	EqEq
	BangEq
	AndAnd // &&
	OrOr   // ||
	Bang   // !
	Question
	Colon
	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PlusPlus
	MinusMinus
	Comma
	Dot
	Semicolon
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "eof"
	case Ident:
		return "ident"
	case KwVar:
		return "var"
	case KwLet:
		return "let"
	case KwConst:
		return "const"
	case KwIf:
		return "if"
	case KwElse:
		return "else"
	case KwWhile:
		return "while"
	case KwFor:
		return "for"
	case KwReturn:
		return "return"
	case KwFunction:
		return "function"
	case KwStruct:
		return "struct"
	case KwImport:
		return "import"
	case KwTrue:
		return "true"
	case KwFalse:
		return "false"
	case KwInt:
		return "int"
	case KwDouble:
		return "double"
	case KwString:
		return "string"
	case KwBool:
		return "bool"
	case KwVoid:
		return "void"
	case IntLit:
		return "int-literal"
	case DoubleLit:
		return "double-literal"
	case StringLit:
		return "string-literal"
	default:
		return "punct"
	}
}

// IsReservedTypeName reports whether k is one of the reserved type
// keywords spec.md §6 forbids as declaration identifiers.
func (k Kind) IsReservedTypeName() bool {
	switch k {
	case KwInt, KwDouble, KwString, KwBool, KwVoid:
		return true
	default:
		return false
	}
}
