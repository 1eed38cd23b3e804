package diag

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/nanov/jsasta/internal/source"
)

// goldenEntry is the YAML-serializable shape of one diagnostic, as
// written by FormatGolden (see sunholo-data-ailang's
// internal/eval_harness fixture pattern in DESIGN.md for the grounding
// of this choice of format).
type goldenEntry struct {
	Severity string `yaml:"severity"`
	Code     string `yaml:"code"`
	Path     string `yaml:"path"`
	Line     uint32 `yaml:"line"`
	Col      uint32 `yaml:"col"`
	Message  string `yaml:"message"`
}

// FormatGolden renders diagnostics into stable YAML text, sorted by
// path, then line, then column, suitable for storing as a test fixture.
func FormatGolden(diags []Diagnostic, fs *source.FileSet) (string, error) {
	entries := make([]goldenEntry, 0, len(diags))
	for _, d := range diags {
		start, _ := fs.Resolve(d.Primary)
		entries = append(entries, goldenEntry{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Path:     fs.Get(d.Primary.File).Path,
			Line:     start.Line,
			Col:      start.Col,
			Message:  d.Message,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		if entries[i].Line != entries[j].Line {
			return entries[i].Line < entries[j].Line
		}
		return entries[i].Col < entries[j].Col
	})
	out, err := yaml.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
