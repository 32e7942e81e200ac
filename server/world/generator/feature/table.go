package feature

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

// ErrInvalidTable is returned when a vegetation table is composed from invalid
// entries.
var ErrInvalidTable = errors.New("invalid vegetation table")

// Entry is a single weighted choice of a vegetation table. Chance is the
// probability of the entry being selected when it is tried, independent of
// the other entries.
type Entry struct {
	Feature Ref
	Chance  float64
}

// Table is an ordered list of entries with a fallback feature, used by the
// host to decide which feature grows at a position. Tables hold references to
// features only: the Registry the features were registered in must outlive
// the table.
type Table struct {
	entries  []Entry
	fallback Ref
}

// NewTable composes a Table. Every chance must be in (0, 1] and fallback must
// be set.
func NewTable(fallback Ref, entries ...Entry) (Table, error) {
	if fallback.Zero() {
		return Table{}, fmt.Errorf("%w: fallback is not set", ErrInvalidTable)
	}
	for i, e := range entries {
		if e.Feature.Zero() {
			return Table{}, fmt.Errorf("%w: entry %d has no feature", ErrInvalidTable, i)
		}
		if math.IsNaN(e.Chance) || e.Chance <= 0 || e.Chance > 1 {
			return Table{}, fmt.Errorf("%w: entry %d (%v) has chance %v, expected (0, 1]", ErrInvalidTable, i, e.Feature.ID, e.Chance)
		}
	}
	return Table{entries: slices.Clone(entries), fallback: fallback}, nil
}

// Entries returns the entries of the table in order.
func (t Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Fallback returns the feature selected if no entry is.
func (t Table) Fallback() Ref {
	return t.fallback
}

// Resolve selects a feature. Entries are tried in order, each succeeding with
// its own chance, and the first success wins. If no entry succeeds, the
// fallback is selected. One value is drawn from r for every entry tried.
func (t Table) Resolve(r rand.Source) Ref {
	for _, e := range t.entries {
		if r.Float64() < e.Chance {
			return e.Feature
		}
	}
	return t.fallback
}

// Probabilities returns the overall probability of each entry being selected,
// followed by the probability of the fallback being selected.
func (t Table) Probabilities() []float64 {
	probs := make([]float64, 0, len(t.entries)+1)
	remaining := 1.0
	for _, e := range t.entries {
		probs = append(probs, remaining*e.Chance)
		remaining *= 1 - e.Chance
	}
	return append(probs, remaining)
}

// References returns every feature the table refers to, including the
// fallback.
func (t Table) References() []Ref {
	refs := make([]Ref, 0, len(t.entries)+1)
	for _, e := range t.entries {
		refs = append(refs, e.Feature)
	}
	return append(refs, t.fallback)
}
