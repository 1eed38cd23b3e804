package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Interner assigns stable StringIDs to identifier text, deduplicating
// repeated names across a whole compile (struct field names, import
// segments, mangled-name components all flow through the same table).
type Interner struct {
	strings []string
	index   map[string]StringID
}

// NewInterner builds an empty interner. Index 0 is reserved for
// NoStringID so a zero-valued StringID is never confused with "".
func NewInterner() *Interner {
	return &Interner{
		strings: []string{""},
		index:   map[string]StringID{"": NoStringID},
	}
}

// Intern returns the StringID for s, assigning a new one if needed.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	n, err := safecast.Conv[uint32](len(in.strings))
	if err != nil {
		panic(fmt.Errorf("source: string table overflow: %w", err))
	}
	id := StringID(n)
	in.strings = append(in.strings, s)
	in.index[s] = id
	return id
}

// Lookup returns the text for id, or "" if id is unknown.
func (in *Interner) Lookup(id StringID) string {
	if int(id) >= len(in.strings) {
		return ""
	}
	return in.strings[id]
}
