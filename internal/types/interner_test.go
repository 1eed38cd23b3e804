package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectFieldOrderInsignificant(t *testing.T) {
	in := NewInterner()
	a := in.Object([]Field{{Name: "x", Type: in.Builtins().Int}, {Name: "y", Type: in.Builtins().Double}})
	b := in.Object([]Field{{Name: "y", Type: in.Builtins().Double}, {Name: "x", Type: in.Builtins().Int}})
	require.Equal(t, a, b)
}

func TestObjectFieldTypeDistinguishes(t *testing.T) {
	in := NewInterner()
	a := in.Object([]Field{{Name: "x", Type: in.Builtins().Int}})
	b := in.Object([]Field{{Name: "x", Type: in.Builtins().Double}})
	require.NotEqual(t, a, b)
}

func TestStructFieldOrderSignificant(t *testing.T) {
	in := NewInterner()
	a := in.Struct("Point", []Field{{Name: "x", Type: in.Builtins().Int}, {Name: "y", Type: in.Builtins().Int}})
	b := in.Struct("Point", []Field{{Name: "y", Type: in.Builtins().Int}, {Name: "x", Type: in.Builtins().Int}})
	require.NotEqual(t, a, b)
}

func TestArrayInterning(t *testing.T) {
	in := NewInterner()
	a := in.Array(in.Builtins().Int, 3)
	b := in.Array(in.Builtins().Int, 3)
	c := in.Array(in.Builtins().Int, DynamicSize)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestNumericJoin(t *testing.T) {
	k, ok := NumericJoin(KindInt, KindDouble)
	require.True(t, ok)
	require.Equal(t, KindDouble, k)

	_, ok = NumericJoin(KindInt, KindBool)
	require.False(t, ok)
}
