package token

// keywords maps reserved words to their Kind. Identifiers not present
// here lex as plain Ident — including "Array", the array-size builtin,
// which the parser distinguishes by text at call sites rather than by
// a dedicated keyword (spec.md §6).
var keywords = map[string]Kind{
	"var":      KwVar,
	"let":      KwLet,
	"const":    KwConst,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"for":      KwFor,
	"return":   KwReturn,
	"function": KwFunction,
	"struct":   KwStruct,
	"import":   KwImport,
	"true":     KwTrue,
	"false":    KwFalse,
	"int":      KwInt,
	"double":   KwDouble,
	"string":   KwString,
	"bool":     KwBool,
	"void":     KwVoid,
}

// Lookup returns the keyword Kind for text, or (Ident, false) if text
// is a plain identifier.
func Lookup(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
