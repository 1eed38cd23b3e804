package symbols

import (
	"testing"

	"github.com/nanov/jsasta/internal/types"
	"github.com/stretchr/testify/require"
)

func TestDefineDuplicateInSameScopeFails(t *testing.T) {
	s := NewScope(ScopeModule, nil)
	require.True(t, s.Define(NewVar("x", true, types.UnknownTypeID)))
	require.False(t, s.Define(NewVar("x", false, types.UnknownTypeID)))
}

func TestShadowingAcrossScopesAllowed(t *testing.T) {
	outer := NewScope(ScopeModule, nil)
	require.True(t, outer.Define(NewVar("x", true, types.UnknownTypeID)))

	inner := NewScope(ScopeBlock, outer)
	require.True(t, inner.Define(NewVar("x", false, types.UnknownTypeID)))

	b, ok := inner.Lookup("x")
	require.True(t, ok)
	require.False(t, b.Mutable)

	ob, ok := outer.Lookup("x")
	require.True(t, ok)
	require.True(t, ob.Mutable)
}

func TestLookupWalksOutward(t *testing.T) {
	outer := NewScope(ScopeModule, nil)
	outer.Define(NewConst("N", ConstValue{Kind: types.KindInt, I: 3}, types.UnknownTypeID))

	inner := NewScope(ScopeFunction, outer)
	b, ok := inner.Lookup("N")
	require.True(t, ok)
	require.Equal(t, KindConst, b.Kind)
	require.Equal(t, int32(3), b.ConstValue.I)
}

func TestLookupLocalDoesNotWalk(t *testing.T) {
	outer := NewScope(ScopeModule, nil)
	outer.Define(NewVar("x", true, types.UnknownTypeID))
	inner := NewScope(ScopeBlock, outer)

	_, ok := inner.LookupLocal("x")
	require.False(t, ok)
}
