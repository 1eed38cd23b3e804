package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test://main.ja", []byte("let x = 1;\nlet y = 2;\n"))

	start, end := fs.Resolve(Span{File: id, Start: 11, End: 16})
	require.Equal(t, LineCol{Line: 2, Col: 1}, start)
	require.Equal(t, LineCol{Line: 2, Col: 6}, end)
}

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Intern("fib")
	b := in.Intern("fib")
	c := in.Intern("add")
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, "fib", in.Lookup(a))
}

func TestFileSetStripsBOMAndNormalizesNFC(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test://bom.ja", append(bomUTF8, []byte("let x = 1;")...))
	f := fs.Get(id)
	require.True(t, f.Flags&FileHadBOM != 0)
	require.Equal(t, "let x = 1;", string(f.Content))
}
