package mono

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/symbols"
)

// env is one specialization instance's lexical environment: a chain of
// symbols.Scope rooted at the declaring module's root scope, plus a
// side-table tracking which variables currently hold a first-class
// reference to a specific function template (spec.md §4.4: "Functions
// stored in variables... the variable inherits the exact
// specialization, so indirect calls resolve to the same mangled name").
// symbols.Binding has no slot for this since it would require importing
// internal/mono from internal/symbols (the cycle both packages were
// built to avoid) — env keeps the mapping here instead, keyed by scope
// plus name so shadowing still works.
type env struct {
	scope    *symbols.Scope
	funcRefs map[*symbols.Scope]map[string]*ast.FunctionDecl
}

func newEnv(root *symbols.Scope) *env {
	return &env{scope: root, funcRefs: map[*symbols.Scope]map[string]*ast.FunctionDecl{}}
}

func (e *env) push(kind symbols.ScopeKind) *env {
	return &env{scope: symbols.NewScope(kind, e.scope), funcRefs: e.funcRefs}
}

func (e *env) setFuncRef(name string, decl *ast.FunctionDecl) {
	m, ok := e.funcRefs[e.scope]
	if !ok {
		m = map[string]*ast.FunctionDecl{}
		e.funcRefs[e.scope] = m
	}
	m[name] = decl
}

// funcRefFor walks the scope chain (mirroring symbols.Scope.Lookup's
// outward walk) looking for a first-class function reference recorded
// against name.
func (e *env) funcRefFor(name string) (*ast.FunctionDecl, bool) {
	for s := e.scope; s != nil; s = s.Parent {
		if m, ok := e.funcRefs[s]; ok {
			if d, ok := m[name]; ok {
				return d, true
			}
		}
		if _, ok := s.LookupLocal(name); ok {
			return nil, false
		}
	}
	return nil, false
}
