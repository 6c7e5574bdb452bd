// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package stats

import "github.com/corvidlabs/ccl/internal/ccltypes"

// Row is the stat table for one (word, side, adjacency-position): a dense
// scalar vector indexed by (type, property), plus a top-K label table.
// Rows for adjacent positions on the same side of the same lexical entry
// are held in internal/lexicon.Entry's adjacency-position cache, rather
// than chained directly off Row.
type Row struct {
	scalars [numCodes]float64
	top     *TopK
}

// NewRow returns an empty row with a top-K table of the given capacity.
func NewRow(topKMaxLen int) *Row {
	return &Row{top: NewTopK(topKMaxLen)}
}

// Increment adds amount to the Base counter for prop.
func (r *Row) Increment(prop Property, amount float64) {
	r.Add(BaseValue, prop, amount)
}

// Add adds amount to the (typ, prop) counter directly. Base/Derived values
// for In are both populated this way; Learn and Block are always Base.
func (r *Row) Add(typ ValueType, prop Property, amount float64) {
	r.scalars[code(typ, prop)] += amount
}

// Query returns the current Base counter value for prop.
func (r *Row) Query(prop Property) float64 {
	return r.Get(BaseValue, prop)
}

// Get returns the current (typ, prop) counter value.
func (r *Row) Get(typ ValueType, prop Property) float64 {
	return r.scalars[code(typ, prop)]
}

// IncrementLabel adds amount to label's Seen strength in this row's top-K
// table.
func (r *Row) IncrementLabel(label ccltypes.Label, amount float64) {
	r.top.Insert(label, amount)
}

// IterTop returns the row's labels in descending Seen order.
func (r *Row) IterTop() []LabelEntry {
	return r.top.IterTop()
}

// TopK exposes the row's label table, e.g. for Seen/CountAbove lookups.
func (r *Row) TopK() *TopK {
	return r.top
}

// Scalars returns the row's dense (type, property) counter vector, for
// persistence by internal/lexiconstore.
func (r *Row) Scalars() [numCodes]float64 {
	return r.scalars
}

// SetScalars overwrites the row's counter vector, restoring it from
// persisted storage.
func (r *Row) SetScalars(v [numCodes]float64) {
	r.scalars = v
}
