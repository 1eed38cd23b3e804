package symbols

// Table is the per-module symbol table: a module root scope seeded
// with import bindings (spec.md §3: "per-module root scope seeded with
// imports"), from which every function/block scope in that module
// descends.
type Table struct {
	Root *Scope
}

// NewTable creates a table with a fresh, empty module-root scope.
func NewTable() *Table {
	return &Table{Root: NewScope(ScopeModule, nil)}
}

// Push opens a new nested scope under parent.
func Push(kind ScopeKind, parent *Scope) *Scope {
	return NewScope(kind, parent)
}
