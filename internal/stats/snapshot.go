// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package stats

// Snapshot is an immutable value-copy of a Row, captured so that the
// scorer's reads are stable during a single parse cycle.
//
// Per "Copy semantics", the derived label counts (NumLabels,
// NumAboveBlock, Strongest) are recomputed at construction time and never
// tracked incrementally.
type Snapshot struct {
	scalars [numCodes]float64
	top     *TopK

	NumLabels     int
	NumAboveBlock int
	Strongest     float64
}

// Query returns the Base counter value for prop, as of the snapshot.
func (s Snapshot) Query(prop Property) float64 {
	return s.scalars[code(BaseValue, prop)]
}

// Get returns the (typ, prop) counter value, as of the snapshot.
func (s Snapshot) Get(typ ValueType, prop Property) float64 {
	return s.scalars[code(typ, prop)]
}

// IterTop returns the snapshotted labels in descending Seen order.
func (s Snapshot) IterTop() []LabelEntry {
	return s.top.IterTop()
}

// Snapshot captures an immutable copy of the row: the scalar vector by
// value, plus the top-K table's derived aggregate counts, using the Base
// Block counter as the threshold ("Seen/Learn > Block/Learn" reduces to
// "Seen > Block" because every label in a row shares the same Learn
// divisor — see).
func (r *Row) Snapshot() Snapshot {
	block := r.Query(Block)
	return Snapshot{
		scalars:       r.scalars,
		top:           r.top.clone(),
		NumLabels:     r.top.Len(),
		NumAboveBlock: r.top.CountAbove(block),
		Strongest:     r.top.Strongest(),
	}
}
