package diag

import "sort"

// Bag collects diagnostics across a phase. It is append-only and owned
// by whichever phase is currently writing to it (spec.md §5).
type Bag struct {
	items []Diagnostic
}

// NewBag creates an empty bag.
func NewBag() *Bag { return &Bag{} }

// Add appends a diagnostic.
func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

// Len returns the number of diagnostics collected.
func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any diagnostic is SevError or above.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// CountBySeverity returns how many diagnostics exist at each severity,
// for the per-run summary line spec.md §6 requires.
func (b *Bag) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int, 4)
	for i := range b.items {
		counts[b.items[i].Severity]++
	}
	return counts
}

// Items returns the collected diagnostics. Callers must not mutate the
// backing array.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends another bag's diagnostics onto this one, preserving
// phase ordering (spec.md §5: "diagnostics are reported in phase order").
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start, end, severity (desc), code
// (asc) for deterministic output (spec.md §8 property 5: determinism).
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
