package llvm

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/types"
)

// emitStmt lowers one statement, returning true iff it's a Return (or a
// block or if that always returns along every path; while and for
// always report false) so the caller can skip a fallthrough terminator.
func (fe *funcEmitter) emitStmt(s ast.Stmt, scope *codegenScope) bool {
	switch n := s.(type) {
	case *ast.VarDecl:
		fe.emitVarDecl(n, scope)
		return false
	case *ast.ConstDecl:
		fe.emitConstDecl(n, scope)
		return false
	case *ast.Block:
		return fe.emitBlock(n, scope)
	case *ast.ExprStmt:
		fe.emitExpr(n.X, scope)
		return false
	case *ast.If:
		return fe.emitIf(n, scope)
	case *ast.While:
		fe.emitWhile(n, scope)
		return false
	case *ast.For:
		fe.emitFor(n, scope)
		return false
	case *ast.Return:
		fe.emitReturn(n, scope)
		return true
	default:
		return false
	}
}

// emitVarDecl allocates the binding's slot at its final, post-widening
// type (n.BindingType, set by internal/mono's fixed point once every
// assignment in its scope has been joined in — spec.md §4.2) rather
// than its initializer's own type, promoting the initial store if the
// two differ (`var x = 1; x += 2.5;` allocates x as double from the
// start).
func (fe *funcEmitter) emitVarDecl(n *ast.VarDecl, scope *codegenScope) {
	ty, val := fe.emitExpr(n.Init, scope)
	slotTy := ty
	if n.BindingType != ast.UnknownTypeID {
		if t, err := llvmType(fe.e.types, n.BindingType); err == nil {
			slotTy = t
		}
	}
	val = fe.promoteTo(ty, val, slotTy)
	slot := fe.allocaLocal(n.Name, slotTy, val, fe.kind(n.Init) == types.KindString)
	scope.define(n.Name, slot)
}

func (fe *funcEmitter) emitConstDecl(n *ast.ConstDecl, scope *codegenScope) {
	ty, val := fe.emitExpr(n.Init, scope)
	slot := fe.allocaLocal(n.Name, ty, val, fe.kind(n.Init) == types.KindString)
	scope.define(n.Name, slot)
}

func (fe *funcEmitter) emitReturn(n *ast.Return, scope *codegenScope) {
	if n.Value == nil || fe.returnType == "void" {
		fe.emitf("  ret void\n")
		return
	}
	_, val := fe.emitExpr(n.Value, scope)
	fe.emitf("  ret %s %s\n", fe.returnType, val)
}

// emitIf lowers the branch and reports whether both arms always return
// (so a block containing only an exhaustive if needn't add its own
// terminator).
func (fe *funcEmitter) emitIf(n *ast.If, scope *codegenScope) bool {
	_, cond := fe.emitExpr(n.Cond, scope)
	thenL := fe.nextLabel("if.then.")
	elseL := fe.nextLabel("if.else.")
	endL := fe.nextLabel("if.end.")

	fe.emitf("  br i1 %s, label %%%s, label %%%s\n", cond, thenL, elseL)

	fe.emitf("%s:\n", thenL)
	thenTerm := fe.emitStmt(n.Then, newCodegenScope(scope))
	if !thenTerm {
		fe.emitf("  br label %%%s\n", endL)
	}

	fe.emitf("%s:\n", elseL)
	elseTerm := false
	if n.Els != nil {
		elseTerm = fe.emitStmt(n.Els, newCodegenScope(scope))
	}
	if !elseTerm {
		fe.emitf("  br label %%%s\n", endL)
	}

	if thenTerm && elseTerm {
		return true
	}
	fe.emitf("%s:\n", endL)
	return false
}

func (fe *funcEmitter) emitWhile(n *ast.While, scope *codegenScope) {
	headL := fe.nextLabel("while.head.")
	bodyL := fe.nextLabel("while.body.")
	endL := fe.nextLabel("while.end.")

	fe.emitf("  br label %%%s\n", headL)
	fe.emitf("%s:\n", headL)
	_, cond := fe.emitExpr(n.Cond, scope)
	fe.emitf("  br i1 %s, label %%%s, label %%%s\n", cond, bodyL, endL)

	fe.emitf("%s:\n", bodyL)
	if !fe.emitStmt(n.Body, newCodegenScope(scope)) {
		fe.emitf("  br label %%%s\n", headL)
	}
	fe.emitf("%s:\n", endL)
}

func (fe *funcEmitter) emitFor(n *ast.For, scope *codegenScope) {
	forScope := newCodegenScope(scope)
	if n.Init != nil {
		fe.emitStmt(n.Init, forScope)
	}

	headL := fe.nextLabel("for.head.")
	bodyL := fe.nextLabel("for.body.")
	postL := fe.nextLabel("for.post.")
	endL := fe.nextLabel("for.end.")

	fe.emitf("  br label %%%s\n", headL)
	fe.emitf("%s:\n", headL)
	if n.Cond != nil {
		_, cond := fe.emitExpr(n.Cond, forScope)
		fe.emitf("  br i1 %s, label %%%s, label %%%s\n", cond, bodyL, endL)
	} else {
		fe.emitf("  br label %%%s\n", bodyL)
	}

	fe.emitf("%s:\n", bodyL)
	if !fe.emitStmt(n.Body, newCodegenScope(forScope)) {
		fe.emitf("  br label %%%s\n", postL)
	}

	fe.emitf("%s:\n", postL)
	if n.Post != nil {
		fe.emitStmt(n.Post, forScope)
	}
	fe.emitf("  br label %%%s\n", headL)

	fe.emitf("%s:\n", endL)
}
