// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package stats

import "github.com/corvidlabs/ccl/internal/ccltypes"

// LabelEntry is one row of a TopK table: a label and its accumulated Seen
// strength.
type LabelEntry struct {
	Label ccltypes.Label
	Seen  float64
}

// TopK maintains, for one (word, side, adj_pos) row, the labels seen at
// that position in descending Seen order, bounded to MaxLen entries
//.
type TopK struct {
	MaxLen  int
	entries []LabelEntry
}

// NewTopK returns an empty top-K table with the given capacity.
func NewTopK(maxLen int) *TopK {
	if maxLen <= 0 {
		maxLen = 1
	}
	return &TopK{MaxLen: maxLen}
}

// Insert adds amount to label's Seen strength (or creates it with that
// strength if new), re-sorting to keep the table in descending order.
//
// Insertion policy:
//   - existing label: Seen += amount, resift upward.
//   - new label, table below capacity: append, sift into place.
//   - new label, table at capacity: replace the tail iff strictly
//     stronger than it; a value equal to the tail also replaces it
//     (recency wins on ties); otherwise the insert is dropped.
func (t *TopK) Insert(label ccltypes.Label, amount float64) {
	for i := range t.entries {
		if t.entries[i].Label == label {
			t.entries[i].Seen += amount
			t.siftUp(i)
			return
		}
	}
	newEntry := LabelEntry{Label: label, Seen: amount}
	if len(t.entries) < t.MaxLen {
		t.entries = append(t.entries, newEntry)
		t.siftUp(len(t.entries) - 1)
		return
	}
	tail := len(t.entries) - 1
	if tail < 0 {
		return
	}
	if newEntry.Seen >= t.entries[tail].Seen {
		t.entries[tail] = newEntry
		t.siftUp(tail)
	}
}

// siftUp moves the entry at index i left while it is stronger than (or, on
// a tie, simply not weaker than — recency wins) its left neighbor.
func (t *TopK) siftUp(i int) {
	for i > 0 && t.entries[i].Seen >= t.entries[i-1].Seen {
		t.entries[i], t.entries[i-1] = t.entries[i-1], t.entries[i]
		i--
	}
}

// Seen returns the label's current strength, or (0, false) if absent.
func (t *TopK) Seen(label ccltypes.Label) (float64, bool) {
	for _, e := range t.entries {
		if e.Label == label {
			return e.Seen, true
		}
	}
	return 0, false
}

// IterTop returns the table's entries in descending strength order. The
// returned slice must not be mutated by the caller.
func (t *TopK) IterTop() []LabelEntry {
	return t.entries
}

// Len returns the number of entries currently held.
func (t *TopK) Len() int {
	return len(t.entries)
}

// CountAbove returns the number of entries whose Seen strictly exceeds
// threshold.
func (t *TopK) CountAbove(threshold float64) int {
	n := 0
	for _, e := range t.entries {
		if e.Seen > threshold {
			n++
		}
	}
	return n
}

// Strongest returns the strength of the top entry, or 0 if empty.
func (t *TopK) Strongest() float64 {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[0].Seen
}

// clone returns a deep copy, used by Row.Snapshot so that later mutation
// of the live table never affects an already-taken snapshot.
func (t *TopK) clone() *TopK {
	c := &TopK{MaxLen: t.MaxLen}
	if len(t.entries) > 0 {
		c.entries = append([]LabelEntry(nil), t.entries...)
	}
	return c
}
