package symbols

// ScopeKind labels what kind of lexical construct a Scope corresponds
// to, mirroring the teacher's ScopeKind enum but reduced to what
// spec.md §3 actually distinguishes (module root vs. function body vs.
// a plain nested block — if/while/for all introduce the last kind).
type ScopeKind uint8

const (
	ScopeModule ScopeKind = iota
	ScopeFunction
	ScopeBlock
)

// Scope is one lexical scope: a name->Binding map plus a parent link.
// Unlike the teacher's arena-indexed Scopes (ScopeID into a slice, to
// match its ID-addressed AST), this Scope is a plain pointer node,
// matching internal/ast's pointer-tree rather than arena convention.
type Scope struct {
	Kind    ScopeKind
	Parent  *Scope
	names   map[string]Binding
	order   []string // insertion order, for deterministic iteration (tests, debug dumps)
}

// NewScope creates a scope nested under parent (nil for a module root).
func NewScope(kind ScopeKind, parent *Scope) *Scope {
	return &Scope{Kind: kind, Parent: parent, names: make(map[string]Binding)}
}

// Define introduces name in this scope. It reports ok=false if name is
// already bound in this exact scope (spec.md §3: "duplicate definition
// in the same scope is an error"); shadowing an outer scope's binding
// is always allowed and is not visible to this check.
func (s *Scope) Define(b Binding) (ok bool) {
	if _, exists := s.names[b.Name]; exists {
		return false
	}
	s.names[b.Name] = b
	s.order = append(s.order, b.Name)
	return true
}

// Redefine overwrites an existing binding in this exact scope, used by
// the analyzer to update a Var's running type as assignments widen it
// (spec.md §4.2: "a binding's type is the join of its initializer and
// all subsequent assignments"). The name must already be defined here.
func (s *Scope) Redefine(b Binding) {
	s.names[b.Name] = b
}

// Lookup walks outward from s, returning the first binding found.
func (s *Scope) Lookup(name string) (Binding, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if b, ok := sc.names[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// LookupLocal checks only this scope, without walking outward.
func (s *Scope) LookupLocal(name string) (Binding, bool) {
	b, ok := s.names[name]
	return b, ok
}

// Names returns the names defined directly in this scope, in
// declaration order.
func (s *Scope) Names() []string {
	return append([]string(nil), s.order...)
}
