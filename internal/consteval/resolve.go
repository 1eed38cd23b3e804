package consteval

import (
	"sort"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
)

// mapEnv is the trivial Env backed by a plain map, used internally by
// Resolve and by callers (internal/mono's Phase 0) that only need
// name->Value lookups without a full symbol table.
type mapEnv map[string]Value

func (e mapEnv) Lookup(name string) (Value, bool) { v, ok := e[name]; return v, ok }

// Pending is one not-yet-folded module-level const declaration.
type Pending struct {
	Name string
	Init ast.Expr
}

// Resolve folds a batch of module-level consts to values, in whatever
// order their cross-references allow, in a worklist convergence loop:
// repeatedly sweep the pending set, fold whatever Evaluate can resolve
// given what's already folded, and stop when a full sweep makes no
// progress. Anything still pending at that point is a reference cycle
// (spec.md §4.3, T315).
//
// base, if non-nil, seeds additional names (e.g. consts already folded
// by a different module) that Resolve's own entries may reference.
func Resolve(pending []Pending, base Env, bag *diag.Bag) map[string]Value {
	resolved := make(mapEnv, len(pending))
	remaining := append([]Pending(nil), pending...)

	env := chainEnv{local: resolved, base: base}
	reporter := diag.BagReporter{Bag: bag}

	for len(remaining) > 0 {
		next := remaining[:0]
		progressed := false
		var lastErrs []struct {
			p   Pending
			err *Error
		}

		for _, p := range remaining {
			v, err := Evaluate(p.Init, env)
			if err != nil {
				if err.Kind == ErrUndefinedRef {
					next = append(next, p)
					lastErrs = append(lastErrs, struct {
						p   Pending
						err *Error
					}{p, err})
					continue
				}
				diag.Error(reporter, codeForError(err.Kind), exprSpan(p.Init), err.Msg)
				progressed = true
				continue
			}
			resolved[p.Name] = v
			progressed = true
		}

		if !progressed {
			sort.Slice(lastErrs, func(i, j int) bool { return lastErrs[i].p.Name < lastErrs[j].p.Name })
			for _, le := range lastErrs {
				diag.Error(reporter, diag.TypeConstCycle, exprSpan(le.p.Init), "const cycle: "+le.p.Name+" cannot be resolved")
			}
			break
		}
		remaining = next
	}

	return resolved
}

// chainEnv looks a name up in local first, falling back to base. This
// lets a module's own consts shadow/extend whatever an outer caller
// (internal/mono stitching multiple modules' Phase 0 results together)
// already resolved.
type chainEnv struct {
	local mapEnv
	base  Env
}

func (e chainEnv) Lookup(name string) (Value, bool) {
	if v, ok := e.local[name]; ok {
		return v, true
	}
	if e.base != nil {
		return e.base.Lookup(name)
	}
	return Value{}, false
}

func codeForError(k ErrorKind) diag.Code {
	switch k {
	case ErrDivisionByZero, ErrOverflow:
		return diag.TypeConstEvalError
	case ErrTypeMismatch:
		return diag.TypeMismatch
	default:
		return diag.TypeConstEvalError
	}
}
