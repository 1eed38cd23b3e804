package diag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanov/jsasta/internal/source"
)

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag()
	b.Add(Diagnostic{Severity: SevWarning, Code: TypeMismatch, Primary: source.Span{File: 0, Start: 10, End: 12}})
	b.Add(Diagnostic{Severity: SevError, Code: TypeUndefinedName, Primary: source.Span{File: 0, Start: 1, End: 2}})
	b.Sort()
	require.Equal(t, TypeUndefinedName, b.Items()[0].Code)
	require.True(t, b.HasErrors())
}

func TestCodeStringFormat(t *testing.T) {
	require.Equal(t, "T301", TypeUndefinedName.String())
	require.Equal(t, "E2001", ParseUnexpectedToken.String())
	require.Equal(t, "M4002", ModuleCyclicImport.String())
}
