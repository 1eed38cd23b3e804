// Package mono implements C8, the type inference and specialization
// engine: it assigns a concrete type to every reachable expression and
// discovers the set of monotype specializations each user function
// needs, iterating to a fixed point (spec.md §4.4). It is the
// integration point between internal/symbols (scopes/bindings),
// internal/types (the value-type lattice), and internal/consteval
// (array sizes, struct field defaults) — those three packages were each
// built to avoid depending on this one, so this package owns the wiring
// between them instead.
package mono

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/consteval"
	"github.com/nanov/jsasta/internal/symbols"
	"github.com/nanov/jsasta/internal/types"
)

// FuncInfo is one user-declared function template: its AST, the module
// it's declared in, and every specialization discovered for it so far.
// Specs is kept in discovery order since spec.md §4.5 requires
// specializations to be emitted "in the order specializations were
// discovered".
type FuncInfo struct {
	Decl          *ast.FunctionDecl
	Module        string
	QualifiedName string

	Specs []*Specialization
	bySig map[string]*Specialization
}

// Specialization is one monotyped clone of a FuncInfo's body, keyed by
// its parameter type tuple (spec.md §3: "Specialization is a tuple
// (function_qualified_name, [param_type; N], param_type_infos[N])" —
// simplified here to (qualified_name, []TypeID) alone, since two
// TypeIDs are equal iff their descriptors are structurally equal, which
// already captures everything param_type_infos would add).
type Specialization struct {
	Func        *FuncInfo
	ParamTypes  []types.TypeID
	MangledName string

	Body       *ast.Block
	ParamNames []string
	ReturnType types.TypeID
	returnSeen bool

	DiscoveryIndex int
	Emitted        bool
}

// structInfo is a declared struct's interned descriptor plus the decl
// it was built from (needed to resolve field defaults lazily).
type structInfo struct {
	TypeID types.TypeID
	Decl   *ast.StructDecl
}

// moduleCtx is one module's Phase-0/1 state: its root scope (seeded
// with imports plus this module's own struct/const/func declarations)
// and its resolved consts.
type moduleCtx struct {
	Meta   *ast.File
	Path   string
	Root   *symbols.Scope
	Consts map[string]consteval.Value
}

// Program is the fully-seeded, fixed-point result: every module's
// symbol table, every function's discovered specializations, and the
// synthesized entry body (spec.md §4.4 Phase 2: "entry module's
// top-level first").
type Program struct {
	Interner *types.Interner

	modules map[string]*moduleCtx
	funcs   map[*ast.FunctionDecl]*FuncInfo
	structs map[*ast.StructDecl]structInfo

	EntryModule string
	EntryBody   *ast.Block

	// AllFuncs lists every FuncInfo in registration order, for
	// deterministic iteration (emission, debug dumps).
	AllFuncs []*FuncInfo

	// AllSpecs lists every Specialization across every function, in
	// discovery order (spec.md §4.5: "emitted... in the order
	// specializations were discovered"). DiscoveryIndex is this slice's
	// index at registration time, doubling as Call.Resolved's value.
	AllSpecs []*Specialization
}

func sigKey(types_ []types.TypeID) string {
	b := make([]byte, 0, len(types_)*5)
	for _, t := range types_ {
		b = append(b, byte(t), byte(t>>8), byte(t>>16), byte(t>>24), '|')
	}
	return string(b)
}
