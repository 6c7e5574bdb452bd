// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package labels

import "github.com/corvidlabs/ccl/internal/ccltypes"

// Entry is one label held for a word, with its strength.
type Entry struct {
	Label    ccltypes.Label
	Strength float64
}

// Table holds one word's labels, partitioned by side, bounded to MaxLen
// entries per side.
type Table struct {
	MaxLen int
	sides  [2][]Entry // indexed by ccltypes.Side
}

// NewTable returns an empty label table with the given per-side capacity.
func NewTable(maxLen int) *Table {
	if maxLen <= 0 {
		maxLen = 1
	}
	return &Table{MaxLen: maxLen}
}

// Insert adds label to side's list, or raises its strength to max(old,
// new) if it is already present. Strength never decreases.
func (t *Table) Insert(side ccltypes.Side, label ccltypes.Label, strength float64) {
	list := t.sides[side]
	for i := range list {
		if list[i].Label == label {
			if strength > list[i].Strength {
				list[i].Strength = strength
			}
			return
		}
	}
	if len(list) >= t.MaxLen {
		// replace the weakest entry iff the new one is stronger.
		weakest := 0
		for i := 1; i < len(list); i++ {
			if list[i].Strength < list[weakest].Strength {
				weakest = i
			}
		}
		if len(list) > 0 && strength > list[weakest].Strength {
			list[weakest] = Entry{Label: label, Strength: strength}
			t.sides[side] = list
		}
		return
	}
	t.sides[side] = append(list, Entry{Label: label, Strength: strength})
}

// InsertFlipped copies label in its flipped form into side, at the given
// strength — labels other than the word itself are stored in their
// flipped form so they can be matched from the opposite side.
func (t *Table) InsertFlipped(side ccltypes.Side, label ccltypes.Label, strength float64) {
	t.Insert(side, label.Flip(), strength)
}

// Lookup returns the strength of label on side, or (0, false) if absent —
// used by the scorer to answer "does this word have a label matching L
// from the other side" via a plain equality check against the flipped
// table.
func (t *Table) Lookup(side ccltypes.Side, label ccltypes.Label) (float64, bool) {
	for _, e := range t.sides[side] {
		if e.Label == label {
			return e.Strength, true
		}
	}
	return 0, false
}

// Entries returns side's label list. Callers must not mutate the result.
func (t *Table) Entries(side ccltypes.Side) []Entry {
	return t.sides[side]
}
