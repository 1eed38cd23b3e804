package mono

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/source"
	"github.com/nanov/jsasta/internal/symbols"
)

// maxIterations bounds the fixed-point loop; spec.md §4.4 guarantees
// convergence because the type lattice is finite and every function's
// specialization set is bounded by the Cartesian product of that
// lattice over its arity, so hitting this bound means an internal
// inconsistency rather than a slow-but-legitimate program.
const maxIterations = 10000

// Run executes C8's fixed point (spec.md §4.4 Phase 2..N): repeatedly
// walk the entry body and every discovered specialization's body,
// typing expressions and discovering new specializations, until a full
// walk makes no further progress.
func Run(p *Program, rep diag.Reporter) {
	if p.EntryBody == nil {
		return
	}
	entryScope := p.modules[p.EntryModule].Root

	for iter := 0; iter < maxIterations; iter++ {
		progressed := false

		w := &walker{prog: p, rep: rep, progressed: &progressed, spec: nil}
		w.walkBlock(p.EntryBody, newEnv(entryScope))

		for i := 0; i < len(p.AllSpecs); i++ {
			spec := p.AllSpecs[i]
			w := &walker{prog: p, rep: rep, progressed: &progressed, spec: spec}
			en := newSpecEnv(p, spec)
			w.walkBlock(spec.Body, en)
		}

		if !progressed {
			// A walked body that produced no return is Void; walk once
			// more so its call sites see Void before Unknown is reported.
			settled := false
			for _, spec := range p.AllSpecs {
				if spec.ReturnType == p.Interner.Builtins().Unknown && !spec.returnSeen {
					spec.ReturnType = p.Interner.Builtins().Void
					settled = true
				}
			}
			if settled {
				continue
			}
			finalize(p, rep)
			return
		}
	}
	diag.Error(rep, diag.TypeInternalNonConvergence, source.Span{}, "specialization fixed point failed to converge")
}

// newSpecEnv builds the function-scope environment a specialization's
// cloned body types against: its declaring module's root scope as
// parent, with parameters pre-bound to the specialization's argument
// types (spec.md §4.4: "clone f's body, bind parameters to Ti in the
// cloned scope").
func newSpecEnv(p *Program, spec *Specialization) *env {
	mc := p.modules[spec.Func.Module]
	fnScope := symbols.NewScope(symbols.ScopeFunction, mc.Root)
	for i, name := range spec.ParamNames {
		fnScope.Define(symbols.NewVar(name, true, spec.ParamTypes[i]))
	}
	return newEnv(fnScope)
}

// finalize runs after the fixed point settles: anything still Unknown
// is flagged, per spec.md §4.4's tie-breaking rule that a call deferred
// forever "surfaces as Unknown at fixed point and the corresponding
// function is flagged unreachable/uninferrable".
func finalize(p *Program, rep diag.Reporter) {
	b := p.Interner.Builtins()
	for _, spec := range p.AllSpecs {
		if spec.ReturnType == b.Unknown && !spec.returnSeen {
			spec.ReturnType = b.Void
		}
		reportUnreachable(spec.Body, rep)
	}
	reportUnreachable(p.EntryBody, rep)
}

func reportUnreachable(blk *ast.Block, rep diag.Reporter) {
	var visit func(ast.Stmt)
	var visitExpr func(ast.Expr)
	visitExpr = func(e ast.Expr) {
		if e == nil {
			return
		}
		if e.InferredType() == ast.UnknownTypeID {
			diag.Error(rep, diag.TypeUnreachableUninferrable, e.Span(),
				"expression could not be assigned a type at the specialization fixed point")
		}
		switch n := e.(type) {
		case *ast.Unary:
			visitExpr(n.Operand)
		case *ast.Binary:
			visitExpr(n.Left)
			visitExpr(n.Right)
		case *ast.Ternary:
			visitExpr(n.Cond)
			visitExpr(n.Then)
			visitExpr(n.Else)
		case *ast.Assign:
			visitExpr(n.Target)
			visitExpr(n.Value)
		case *ast.IncDec:
			visitExpr(n.Target)
		case *ast.Member:
			visitExpr(n.Receiver)
		case *ast.Index:
			visitExpr(n.Receiver)
			visitExpr(n.Idx)
		case *ast.Call:
			// The callee names a function (or console.log) and is never
			// typed itself; only the arguments are.
			for _, a := range n.Args {
				visitExpr(a)
			}
		case *ast.ArrayNew:
			visitExpr(n.Size)
		case *ast.ArrayLit:
			for _, el := range n.Elems {
				visitExpr(el)
			}
		case *ast.ObjectLit:
			for _, f := range n.Fields {
				visitExpr(f.Value)
			}
		}
	}
	visit = func(s ast.Stmt) {
		switch n := s.(type) {
		case *ast.VarDecl:
			visitExpr(n.Init)
		case *ast.ConstDecl:
			visitExpr(n.Init)
		case *ast.Block:
			for _, st := range n.Stmts {
				visit(st)
			}
		case *ast.ExprStmt:
			visitExpr(n.X)
		case *ast.If:
			visitExpr(n.Cond)
			visit(n.Then)
			if n.Els != nil {
				visit(n.Els)
			}
		case *ast.While:
			visitExpr(n.Cond)
			visit(n.Body)
		case *ast.For:
			if n.Init != nil {
				visit(n.Init)
			}
			if n.Cond != nil {
				visitExpr(n.Cond)
			}
			if n.Post != nil {
				visit(n.Post)
			}
			visit(n.Body)
		case *ast.Return:
			visitExpr(n.Value)
		}
	}
	for _, s := range blk.Stmts {
		visit(s)
	}
}
