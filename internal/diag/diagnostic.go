package diag

import "github.com/nanov/jsasta/internal/source"

// Note adds auxiliary context (a secondary span) to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one coded, located compiler message (spec.md §6: "[SEVERITY:CODE] <file>:<line>:<col>: <message>").
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
