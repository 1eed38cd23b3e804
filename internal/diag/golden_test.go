package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nanov/jsasta/internal/source"
)

// Mirrors the golden-fixture comparison style the pack's parser test
// utilities use (cmp.Diff against an inline "want" string), just without a
// fixture file on disk since this whole package's tests stay self-contained.
func TestFormatGoldenIsStableAndSorted(t *testing.T) {
	fs := source.NewFileSet()
	fa := fs.AddVirtual("a.jsa", []byte("let x = 1;\n"))
	fb := fs.AddVirtual("b.jsa", []byte("let y;\nlet z;\n"))

	diags := []Diagnostic{
		{Severity: SevError, Code: TypeUndefinedName, Primary: source.Span{File: fb, Start: 11, End: 12}, Message: "undefined name z"},
		{Severity: SevWarning, Code: TypeMismatch, Primary: source.Span{File: fa, Start: 8, End: 9}, Message: "implicit numeric widening"},
		{Severity: SevError, Code: TypeUndefinedName, Primary: source.Span{File: fb, Start: 4, End: 5}, Message: "undefined name y"},
	}

	got, err := FormatGolden(diags, fs)
	if err != nil {
		t.Fatalf("FormatGolden: %v", err)
	}

	want := `- severity: WARNING
  code: T307
  path: a.jsa
  line: 1
  col: 9
  message: implicit numeric widening
- severity: ERROR
  code: T301
  path: b.jsa
  line: 1
  col: 5
  message: undefined name y
- severity: ERROR
  code: T301
  path: b.jsa
  line: 2
  col: 5
  message: undefined name z
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("golden mismatch (-want +got):\n%s", diff)
	}
}
