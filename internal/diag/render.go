package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/nanov/jsasta/internal/source"
)

// severityColor maps a severity to the color the CLI renders it in,
// following the teacher's cmd/surge diagnostic rendering convention.
func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return color.New(color.FgRed, color.Bold)
	case SevWarning:
		return color.New(color.FgYellow, color.Bold)
	case SevInfo:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgHiBlack)
	}
}

// Render writes one "[SEVERITY:CODE] file:line:col: message" line per
// diagnostic, in the exact format spec.md §6 mandates, followed by a
// severity-count summary line. When useColor is false (non-TTY or -q),
// color.NoColor-equivalent plain text is written instead.
func Render(w io.Writer, diags []Diagnostic, fs *source.FileSet, useColor bool) {
	for _, d := range diags {
		start, _ := fs.Resolve(d.Primary)
		path := fs.Get(d.Primary.File).Path
		header := fmt.Sprintf("[%s:%s]", d.Severity, d.Code)
		if useColor {
			header = severityColor(d.Severity).Sprint(header)
		}
		fmt.Fprintf(w, "%s %s:%d:%d: %s\n", header, path, start.Line, start.Col, d.Message)
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			npath := fs.Get(n.Span.File).Path
			fmt.Fprintf(w, "    note: %s:%d:%d: %s\n", npath, ns.Line, ns.Col, n.Msg)
		}
	}
	renderSummary(w, diags)
}

func renderSummary(w io.Writer, diags []Diagnostic) {
	var errs, warns, infos, hints int
	for _, d := range diags {
		switch d.Severity {
		case SevError:
			errs++
		case SevWarning:
			warns++
		case SevInfo:
			infos++
		case SevHint:
			hints++
		}
	}
	fmt.Fprintf(w, "%d error(s), %d warning(s), %d info, %d hint(s)\n", errs, warns, infos, hints)
}
