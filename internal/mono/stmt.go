package mono

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/consteval"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/symbols"
	"github.com/nanov/jsasta/internal/types"
)

// walkBlock types every statement in a block's own nested scope.
func (w *walker) walkBlock(blk *ast.Block, en *env) {
	inner := en.push(symbols.ScopeBlock)
	for _, s := range blk.Stmts {
		w.walkStmt(s, inner)
	}
}

func (w *walker) walkStmt(s ast.Stmt, en *env) {
	switch n := s.(type) {
	case *ast.VarDecl:
		w.walkVarDecl(n, en)
	case *ast.ConstDecl:
		w.walkConstDecl(n, en)
	case *ast.Block:
		w.walkBlock(n, en)
	case *ast.ExprStmt:
		w.typeExpr(n.X, en)
	case *ast.If:
		w.walkIf(n, en)
	case *ast.While:
		w.walkWhile(n, en)
	case *ast.For:
		w.walkFor(n, en)
	case *ast.Return:
		w.walkReturn(n, en)
	case *ast.FunctionDecl, *ast.StructDecl, *ast.ImportDecl:
		// Already handled in Seed's Phase 0/1; nested function/struct
		// declarations are not part of this grammar's executable forms.
	}
}

func (w *walker) walkVarDecl(n *ast.VarDecl, en *env) {
	t := w.typeExpr(n.Init, en)
	if ident, ok := n.Init.(*ast.Ident); ok {
		if decl, ok := en.funcRefFor(ident.Name); ok {
			en.setFuncRef(n.Name, decl)
		}
	}
	n.BindingType = t
	en.scope.Define(symbols.NewLocalVar(n.Name, t, n))
}

// walkConstDecl folds a function-local `const` the same way C7 folds a
// module-level one (spec.md §4.3), so it can serve as an Array(size)
// argument later in the same body; if it isn't actually foldable it
// still gets an inferred type and is registered as an immutable
// variable, so ordinary uses of the name keep working.
func (w *walker) walkConstDecl(n *ast.ConstDecl, en *env) {
	t := w.typeExpr(n.Init, en)
	if v, err := consteval.Evaluate(n.Init, scopeConstEnv{en.scope}); err == nil {
		en.scope.Define(symbols.NewConst(n.Name, symbols.ConstValue{Kind: v.Kind, I: v.I, F: v.F, S: v.S, B: v.B}, t))
		return
	}
	en.scope.Define(symbols.NewVar(n.Name, false, t))
}

func (w *walker) walkIf(n *ast.If, en *env) {
	w.typeExpr(n.Cond, en)
	w.walkStmt(n.Then, en)
	if n.Els != nil {
		w.walkStmt(n.Els, en)
	}
}

func (w *walker) walkWhile(n *ast.While, en *env) {
	w.typeExpr(n.Cond, en)
	w.walkStmt(n.Body, en)
}

func (w *walker) walkFor(n *ast.For, en *env) {
	inner := en.push(symbols.ScopeBlock)
	if n.Init != nil {
		w.walkStmt(n.Init, inner)
	}
	if n.Cond != nil {
		w.typeExpr(n.Cond, inner)
	}
	if n.Post != nil {
		w.walkStmt(n.Post, inner)
	}
	w.walkStmt(n.Body, inner)
}

// walkReturn types the return value and folds it into the enclosing
// specialization's running return-type join (spec.md §4.4: "A
// specialization's return type is the join over all reachable return
// expressions in its cloned body; a body with no returns has Void. If
// returns disagree irreconcilably, T307."). When walking the
// synthesized entry body (w.spec == nil) a bare return has no
// specialization to update and is simply typed.
func (w *walker) walkReturn(n *ast.Return, en *env) {
	b := w.builtins()
	var t types.TypeID
	if n.Value != nil {
		t = w.typeExpr(n.Value, en)
	} else {
		t = b.Void
	}
	if w.spec == nil || t == b.Unknown {
		return
	}
	if !w.spec.returnSeen {
		w.spec.ReturnType = t
		w.spec.returnSeen = true
		return
	}
	if w.spec.ReturnType == t {
		return
	}
	if k, ok := types.NumericJoin(kindOf(w.prog.Interner, w.spec.ReturnType), kindOf(w.prog.Interner, t)); ok {
		w.spec.ReturnType = primitiveTypeID(b, k)
		return
	}
	diag.Error(w.rep, diag.TypeMismatch, n.Span(),
		"function "+w.spec.Func.Decl.Name+" returns incompatible types across its return statements")
}
