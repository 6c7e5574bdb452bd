// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexicon

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/labels"
	"github.com/corvidlabs/ccl/internal/stats"
)

// FlushSink receives a stat row evicted from an entry's adjacency-position
// cache before it is discarded, so a persistence layer (internal/lexiconstore)
// can keep it rather than lose the accumulated counts.
type FlushSink interface {
	FlushRow(surface string, side ccltypes.Side, adjPos int, row *stats.Row)
}

// Entry is one lexical entry: a surface form, its occurrence count, and
// per-side statistics/labels.
type Entry struct {
	Surface     string
	Occurrences int

	rows   [2]*lru.Cache[int, *stats.Row] // indexed by ccltypes.Side
	Labels *labels.Table

	topKMaxLen int
	sink       FlushSink
}

func newEntry(surface string, topKMaxLen, adjCacheCap, labelMaxLen int, sink FlushSink) *Entry {
	e := &Entry{
		Surface:    surface,
		Labels:     labels.NewTable(labelMaxLen),
		topKMaxLen: topKMaxLen,
		sink:       sink,
	}
	for side := range e.rows {
		s := ccltypes.Side(side)
		cache, _ := lru.NewWithEvict(adjCacheCap, func(adjPos int, row *stats.Row) {
			if e.sink != nil {
				e.sink.FlushRow(e.Surface, s, adjPos, row)
			}
		})
		e.rows[side] = cache
	}
	return e
}

// Row returns the stat table at (side, adjPos), creating it (and any
// missing entry) lazily —: "the left/right stat tables themselves
// form singly-linked chains, one link per adjacency position 0, 1, 2, …".
// The chain is modeled as an LRU-capped cache rather than an unbounded
// linked list so a pathological utterance cannot grow one entry's memory
// without bound (see, "hashicorp/golang-lru/v2").
func (e *Entry) Row(side ccltypes.Side, adjPos int) *stats.Row {
	cache := e.rows[side]
	if row, ok := cache.Get(adjPos); ok {
		return row
	}
	row := stats.NewRow(e.topKMaxLen)
	cache.Add(adjPos, row)
	return row
}

// PeekRow returns the stat table at (side, adjPos) without creating it,
// and without affecting LRU recency.
func (e *Entry) PeekRow(side ccltypes.Side, adjPos int) (*stats.Row, bool) {
	return e.rows[side].Peek(adjPos)
}

// AdjacencyPositions returns the adjacency positions currently cached for
// side, in no particular order.
func (e *Entry) AdjacencyPositions(side ccltypes.Side) []int {
	return e.rows[side].Keys()
}

// RefreshLabels copies every label seen at adjacency position 0 on side
// into the entry's label table, in flipped form, at the same strength
//. Position 0 is
// used because it is the position the scorer and the learning queue's
// "global properties" propagation both treat as primary.
func (e *Entry) RefreshLabels(side ccltypes.Side) {
	row, ok := e.PeekRow(side, 0)
	if !ok {
		return
	}
	for _, entry := range row.IterTop() {
		e.Labels.InsertFlipped(side, entry.Label, entry.Seen)
	}
}
