package mono

import (
	"testing"

	"github.com/nanov/jsasta/internal/types"
	"github.com/stretchr/testify/require"
)

// Two structurally different object shapes must never mangle to the
// same symbol (spec.md §8 invariant 3: "mangled names collide iff the
// tuples are structurally equal"). This is a direct regression test for
// the suffix's prior 32-bit FNV hash, which could alias distinct field
// lists onto the same suffix.
func TestMangleObjectSuffixIsInjectiveNotHashed(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	oneField := in.Object([]types.Field{{Name: "a", Type: b.Int}})
	twoFields := in.Object([]types.Field{{Name: "a", Type: b.Int}, {Name: "b", Type: b.Int}})
	sameShapeDifferentType := in.Object([]types.Field{{Name: "a", Type: b.Double}})

	s1 := suffixFor(oneField, in)
	s2 := suffixFor(twoFields, in)
	s3 := suffixFor(sameShapeDifferentType, in)

	require.NotEqual(t, s1, s2)
	require.NotEqual(t, s1, s3)
	require.Equal(t, "object_a_int", s1)
	require.Equal(t, "object_a_int_b_int", s2)
	require.Equal(t, "object_a_double", s3)
}

// mangle() renders a full f_<suffix...> symbol, sanitizing the qualified
// name so module path separators never collide two same-named functions
// from different modules.
func TestMangleSanitizesQualifiedNamePath(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()
	require.Equal(t, "a_b_add_int", mangle("a.b.add", []types.TypeID{b.Int}, in))
}
