package diag

import "fmt"

// Code identifies the kind of a diagnostic. Ranges follow spec.md §6:
// E2xx is parse-phase, T3xx is type/semantic, M4xx is module-graph.
type Code uint16

const (
	UnknownCode Code = 0

	// Parse phase (the lexer/parser collaborator, spec.md §1).
	ParseUnexpectedToken    Code = 2001
	ParseUnterminatedString Code = 2002
	ParseBadNumber          Code = 2003
	ParseExpectIdentifier   Code = 2004
	ParseExpectSemicolon    Code = 2005
	ParseExpectExpression   Code = 2006
	ParseReservedTypeName   Code = 2007

	// Module graph (C4, spec.md §4.1).
	ModuleIOFailure     Code = 4001
	ModuleCyclicImport  Code = 4002
	ModuleUnresolvedDep Code = 4003

	// Type / semantic (C5-C8, spec.md §4.2-§4.4, §7).
	TypeUndefinedName           Code = 301
	TypeDuplicateDefinition     Code = 302
	TypeWrongArity              Code = 303
	TypeNoSuchMember            Code = 304
	TypeBadIndexType            Code = 305
	TypeBadReceiver             Code = 306
	TypeMismatch                Code = 307
	TypeVoidInExpression        Code = 308
	TypeReservedKeyword         Code = 309
	TypeLValueRequired          Code = 310
	TypeAssignmentJoinConflict  Code = 311
	TypeEqualityMismatch        Code = 312
	TypeNegativeArraySize       Code = 313
	TypeConstEvalError          Code = 314
	TypeConstCycle              Code = 315
	TypeInternalNonConvergence  Code = 316
	TypeUnreachableUninferrable Code = 317
)

func (c Code) String() string {
	return fmt.Sprintf("%s%03d", c.prefix(), uint16(c))
}

func (c Code) prefix() string {
	switch {
	case c == UnknownCode:
		return "U"
	case c >= 2000 && c < 3000:
		return "E"
	case c >= 4000 && c < 5000:
		return "M"
	default:
		return "T"
	}
}
