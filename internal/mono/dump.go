package mono

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// dumpSchemaVersion guards the on-disk shape of the specialization
// dump; bump it whenever SpecializationDump's fields change.
const dumpSchemaVersion uint16 = 1

// SpecializationDump is a debug artifact: a flat, serializable listing of every specialization the fixed point
// discovered, in discovery order (spec.md §4.5).
type SpecializationDump struct {
	Schema uint16
	Funcs  []FuncDump
}

// FuncDump is one user function template's discovered specializations.
type FuncDump struct {
	QualifiedName string
	Specs         []SpecDump
}

// SpecDump is one monotyped clone: its mangled IR symbol, its parameter
// type tuple rendered the same way mangle() renders them, and its
// inferred return type.
type SpecDump struct {
	MangledName string
	ParamTypes  []string
	ReturnType  string
	Discovery   int
}

// BuildDump flattens a converged Program into a SpecializationDump.
func BuildDump(p *Program) *SpecializationDump {
	d := &SpecializationDump{Schema: dumpSchemaVersion, Funcs: make([]FuncDump, 0, len(p.AllFuncs))}
	for _, fi := range p.AllFuncs {
		fd := FuncDump{QualifiedName: fi.QualifiedName, Specs: make([]SpecDump, 0, len(fi.Specs))}
		for _, spec := range fi.Specs {
			params := make([]string, len(spec.ParamTypes))
			for i, t := range spec.ParamTypes {
				params[i] = suffixFor(t, p.Interner)
			}
			fd.Specs = append(fd.Specs, SpecDump{
				MangledName: spec.MangledName,
				ParamTypes:  params,
				ReturnType:  suffixFor(spec.ReturnType, p.Interner),
				Discovery:   spec.DiscoveryIndex,
			})
		}
		d.Funcs = append(d.Funcs, fd)
	}
	return d
}

// WriteDump msgpack-encodes a specialization dump to w. The jsastac CLI
// has no flag that writes this dump.
func WriteDump(w io.Writer, p *Program) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(BuildDump(p))
}

// ReadDump decodes a previously written specialization dump, mainly for
// tests asserting on the discovered specialization set.
func ReadDump(r io.Reader) (*SpecializationDump, error) {
	dec := msgpack.NewDecoder(r)
	var d SpecializationDump
	if err := dec.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
