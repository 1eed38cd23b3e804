package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanov/jsasta/internal/source"
)

func TestCloneIsIndependent(t *testing.T) {
	sp := source.Span{}
	body := NewBlock(sp, []Stmt{
		NewReturn(sp, NewBinary(sp, OpAdd, NewIdent(sp, "a"), NewIdent(sp, "b"))),
	})
	fn := NewFunctionDecl(sp, "add", []string{"a", "b"}, body)

	clone := fn.Clone().(*FunctionDecl)
	clone.Body.Stmts[0].(*Return).Value.(*Binary).Left.SetType(TypeID(7))

	require.Equal(t, UnknownTypeID, fn.Body.Stmts[0].(*Return).Value.(*Binary).Left.InferredType())
	require.Equal(t, TypeID(7), clone.Body.Stmts[0].(*Return).Value.(*Binary).Left.InferredType())
}
