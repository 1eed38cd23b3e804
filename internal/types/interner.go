package types

import (
	"fmt"
	"sort"
	"strings"

	"fortio.org/safecast"
)

// Builtins holds the TypeIDs of the non-composite tags, computed once
// when the interner is created and never mutated afterward (spec.md §5:
// "a once-initialized table of built-in type descriptors... never
// mutated thereafter").
type Builtins struct {
	Unknown TypeID
	Int     TypeID
	Double  TypeID
	Bool    TypeID
	String  TypeID
	Void    TypeID
}

// Interner assigns stable, structurally-deduplicated TypeIDs. Two
// descriptors that are structurally equal (spec.md §3: "field order
// significant for structs, insignificant for anonymous objects") always
// receive the same TypeID, which is what lets internal/mono use TypeID
// equality alone as its specialization key (spec.md §8 property 3).
type Interner struct {
	types    []Type
	index    map[string]TypeID
	builtins Builtins
}

// NewInterner builds an interner seeded with the five primitive tags.
func NewInterner() *Interner {
	in := &Interner{index: make(map[string]TypeID, 64)}
	in.types = append(in.types, Type{Kind: KindUnknown}) // reserve 0

	in.builtins.Unknown = UnknownTypeID
	in.builtins.Int = in.intern(Type{Kind: KindInt})
	in.builtins.Double = in.intern(Type{Kind: KindDouble})
	in.builtins.Bool = in.intern(Type{Kind: KindBool})
	in.builtins.String = in.intern(Type{Kind: KindString})
	in.builtins.Void = in.intern(Type{Kind: KindVoid})
	return in
}

// Builtins returns the primitive TypeIDs.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Lookup returns the descriptor behind id.
func (in *Interner) Lookup(id TypeID) Type {
	if int(id) >= len(in.types) {
		return Type{}
	}
	return in.types[id]
}

// Array interns Array(elem, size). size is DynamicSize for T[].
func (in *Interner) Array(elem TypeID, size uint32) TypeID {
	return in.intern(Type{Kind: KindArray, Elem: elem, Size: size})
}

// Object interns an anonymous object type. Fields are canonicalized by
// sorting on name, since {x:Int,y:Double} and {y:Double,x:Int} denote
// the same type (spec.md §3).
func (in *Interner) Object(fields []Field) TypeID {
	sorted := append([]Field(nil), fields...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return in.intern(Type{Kind: KindObject, Fields: sorted})
}

// Struct interns a nominal struct type. Field order is preserved as
// declared, since struct field order is significant (spec.md §3) and
// struct identity is additionally distinguished by name.
func (in *Interner) Struct(name string, fields []Field) TypeID {
	return in.intern(Type{Kind: KindStruct, StructName: name, Fields: fields})
}

// Function interns a function signature type (for first-class function
// values, spec.md §4.4: "Functions stored in variables... are typed as
// Function(sig)").
func (in *Interner) Function(params []TypeID, ret TypeID, variadic bool) TypeID {
	return in.intern(Type{Kind: KindFunction, Params: append([]TypeID(nil), params...), Return: ret, Variadic: variadic})
}

func (in *Interner) intern(t Type) TypeID {
	key := structuralKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: interner overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[key] = id
	return id
}

// structuralKey encodes a descriptor well enough that two structurally
// equal types always produce the same key and two structurally distinct
// types never collide. Composite fields are encoded through their
// TypeIDs: a nested type is interned before any type that contains it,
// so two equal nested types already share one ID.
func structuralKey(t Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|", t.Kind)
	switch t.Kind {
	case KindArray:
		fmt.Fprintf(&b, "elem=%d,size=%d", t.Elem, t.Size)
	case KindObject, KindStruct:
		fmt.Fprintf(&b, "name=%s,fields=[", t.StructName)
		for _, f := range t.Fields {
			fmt.Fprintf(&b, "%s:%d;", f.Name, f.Type)
		}
		b.WriteByte(']')
	case KindFunction:
		fmt.Fprintf(&b, "ret=%d,variadic=%t,params=%v", t.Return, t.Variadic, t.Params)
	}
	return b.String()
}
