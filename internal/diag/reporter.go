package diag

import "github.com/nanov/jsasta/internal/source"

// Reporter is the minimal contract phases use to emit diagnostics,
// independent of whether the destination is a Bag (collect-and-report)
// or something immediate (spec.md C1).
type Reporter interface {
	Report(sev Severity, code Code, primary source.Span, msg string, notes ...Note)
}

// BagReporter adapts a *Bag to the Reporter contract.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(sev Severity, code Code, primary source.Span, msg string, notes ...Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// Error is a shorthand for Report(SevError, ...).
func Error(r Reporter, code Code, primary source.Span, msg string, notes ...Note) {
	r.Report(SevError, code, primary, msg, notes...)
}

// Warning is a shorthand for Report(SevWarning, ...).
func Warning(r Reporter, code Code, primary source.Span, msg string, notes ...Note) {
	r.Report(SevWarning, code, primary, msg, notes...)
}

// Info is a shorthand for Report(SevInfo, ...).
func Info(r Reporter, code Code, primary source.Span, msg string, notes ...Note) {
	r.Report(SevInfo, code, primary, msg, notes...)
}
