package mono

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/consteval"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/project"
	"github.com/nanov/jsasta/internal/source"
	"github.com/nanov/jsasta/internal/symbols"
	"github.com/nanov/jsasta/internal/types"
)

// Seed runs Phase 0 (struct/const collection) and Phase 1 (function
// signature registration) over every module in the graph's
// dependency-first order (spec.md §4.4), and builds the synthesized
// entry body the fixed point will start walking from.
func Seed(graph *project.Graph, entryPath string, interner *types.Interner, rep diag.Reporter) *Program {
	p := &Program{
		Interner: interner,
		modules:  make(map[string]*moduleCtx, len(graph.Order)),
		funcs:    make(map[*ast.FunctionDecl]*FuncInfo),
		structs:  make(map[*ast.StructDecl]structInfo),
	}

	for _, path := range graph.Order {
		meta, ok := graph.Get(path)
		if !ok {
			continue
		}
		mc := &moduleCtx{Meta: meta.AST, Path: path, Root: symbols.NewScope(symbols.ScopeModule, nil), Consts: map[string]consteval.Value{}}
		p.modules[path] = mc
		seedImports(p, mc, meta, rep)
		seedStructs(p, mc, rep)
		seedConsts(p, mc, rep)
		seedFuncs(p, mc)
	}

	entry, ok := p.modules[entryPath]
	if !ok {
		return p
	}
	p.EntryModule = entryPath
	p.EntryBody = ast.NewBlock(source.Span{File: entry.Meta.FileID}, entry.Meta.Executable())
	return p
}

// seedImports brings every top-level declaration of each imported
// module into mc's root scope under its own name — spec.md §6 has no
// aliasing syntax, so LocalName and OriginName always coincide
// (DESIGN.md Open Question decision (d)). The binding copied in is the
// imported module's real Var/Const/Func/Struct binding, not a separate
// Import indirection, so lookups through the importing scope resolve
// straight to the same *ast.FunctionDecl / TypeID the origin module
// uses.
func seedImports(p *Program, mc *moduleCtx, meta *project.ModuleMeta, rep diag.Reporter) {
	for _, imp := range meta.Imports {
		dep, ok := p.modules[imp.SourcePath]
		if !ok {
			diag.Error(rep, diag.ModuleUnresolvedDep, imp.Span, "unresolved import: "+imp.SourcePath)
			continue
		}
		for _, name := range dep.Root.Names() {
			b, _ := dep.Root.LookupLocal(name)
			if !mc.Root.Define(b) {
				diag.Error(rep, diag.TypeDuplicateDefinition, imp.Span, "duplicate definition: "+name)
			}
		}
	}
}

func seedStructs(p *Program, mc *moduleCtx, rep diag.Reporter) {
	for _, sd := range mc.Meta.TopLevelStructs() {
		fields := make([]types.Field, 0, len(sd.Fields))
		for _, fd := range sd.Fields {
			ft := types.UnknownTypeID
			if fd.Default != nil {
				if v, err := consteval.Evaluate(fd.Default, constEnv{mc}); err == nil {
					ft = kindTypeID(p.Interner, v.Kind)
				} else {
					diag.Error(rep, diag.TypeConstEvalError, fd.Default.Span(), err.Msg)
				}
			}
			fields = append(fields, types.Field{Name: fd.Name, Type: ft, Default: fd.Default})
		}
		tid := p.Interner.Struct(sd.Name, fields)
		p.structs[sd] = structInfo{TypeID: tid, Decl: sd}
		if !mc.Root.Define(symbols.NewStruct(sd.Name, tid)) {
			diag.Error(rep, diag.TypeDuplicateDefinition, sd.Span(), "duplicate definition: "+sd.Name)
		}
	}
}

func seedConsts(p *Program, mc *moduleCtx, rep diag.Reporter) {
	var pending []consteval.Pending
	for _, cd := range mc.Meta.TopLevelConsts() {
		pending = append(pending, consteval.Pending{Name: cd.Name, Init: cd.Init})
	}
	bag := diag.NewBag()
	resolved := consteval.Resolve(pending, constEnv{mc}, bag)
	for _, d := range bag.Items() {
		rep.Report(d.Severity, d.Code, d.Primary, d.Message, d.Notes...)
	}
	for _, cd := range mc.Meta.TopLevelConsts() {
		v, ok := resolved[cd.Name]
		if !ok {
			continue
		}
		mc.Consts[cd.Name] = v
		tid := kindTypeID(p.Interner, v.Kind)
		sb := symbols.ConstValue{Kind: v.Kind, I: v.I, F: v.F, S: v.S, B: v.B}
		if !mc.Root.Define(symbols.NewConst(cd.Name, sb, tid)) {
			diag.Error(rep, diag.TypeDuplicateDefinition, cd.Span(), "duplicate definition: "+cd.Name)
		}
	}
}

func seedFuncs(p *Program, mc *moduleCtx) {
	for _, fn := range mc.Meta.TopLevelFuncs() {
		fi := &FuncInfo{Decl: fn, Module: mc.Path, QualifiedName: mc.Path + "." + fn.Name, bySig: map[string]*Specialization{}}
		p.funcs[fn] = fi
		p.AllFuncs = append(p.AllFuncs, fi)
		mc.Root.Define(symbols.NewFunc(fn.Name, fn))
	}
}

// kindTypeID maps a const Kind (always a primitive) to its builtin
// TypeID.
func kindTypeID(in *types.Interner, k types.Kind) types.TypeID {
	b := in.Builtins()
	switch k {
	case types.KindInt:
		return b.Int
	case types.KindDouble:
		return b.Double
	case types.KindBool:
		return b.Bool
	case types.KindString:
		return b.String
	default:
		return b.Unknown
	}
}

// constEnv adapts a module's already-resolved consts (and, through the
// import bindings seedImports defines in its root scope, its imports')
// to consteval.Env.
type constEnv struct{ mc *moduleCtx }

func (e constEnv) Lookup(name string) (consteval.Value, bool) {
	if v, ok := e.mc.Consts[name]; ok {
		return v, true
	}
	b, ok := e.mc.Root.LookupLocal(name)
	if !ok || b.Kind != symbols.KindConst {
		return consteval.Value{}, false
	}
	return consteval.Value{Kind: b.ConstValue.Kind, I: b.ConstValue.I, F: b.ConstValue.F, S: b.ConstValue.S, B: b.ConstValue.B}, true
}
