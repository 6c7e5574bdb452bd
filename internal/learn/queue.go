// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package learn

import (
	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/lexicon"
	"github.com/corvidlabs/ccl/internal/stats"
)

// Event is one deferred statistics update: either a block (no adjacent
// word) or a link to an adjacent word at a given distance.
type Event struct {
	Word   string
	Side   ccltypes.Side
	AdjPos int

	// Adjacent is the word attached at this adjacency, or "" for a block
	// event.
	Adjacent string
	Block    bool
}

// Queue is a FIFO of deferred learning events.
type Queue struct {
	events []Event
}

// New returns an empty learning queue.
func New() *Queue {
	return &Queue{}
}

// Push enqueues a block event for word's side/adjPos.
func (q *Queue) Push(word string, side ccltypes.Side, adjPos int) {
	q.events = append(q.events, Event{Word: word, Side: side, AdjPos: adjPos, Block: true})
}

// PushLink enqueues a non-block event recording that adjacent was
// attached at word's side/adjPos.
func (q *Queue) PushLink(word string, side ccltypes.Side, adjPos int, adjacent string) {
	q.events = append(q.events, Event{Word: word, Side: side, AdjPos: adjPos, Adjacent: adjacent})
}

// Len reports the number of queued events.
func (q *Queue) Len() int { return len(q.events) }

// Realize applies every queued event in order against lex, then empties
// the queue. All events are realized atomically at utterance end; within
// a single utterance the statistics seen by the
// scorer are stable because it reads lex.GetOrCreate(...).Row(...).Snapshot()
// values captured before Realize runs.
func (q *Queue) Realize(lex *lexicon.Lexicon) {
	for _, ev := range q.events {
		lex.Observe(ev.Word)
		entry, _ := lex.Lookup(ev.Word)

		row := entry.Row(ev.Side, ev.AdjPos)
		row.Increment(stats.Learn, 1)

		if ev.Block {
			row.Increment(stats.Block, 1)
		} else if ev.Adjacent != "" {
			adjEntry, ok := lex.Lookup(ev.Adjacent)
			if ok {
				for _, le := range adjEntry.Labels.Entries(ev.Side.Opposite()) {
					row.IncrementLabel(le.Label, le.Strength)
				}
			}
		}

		if ev.AdjPos == 0 {
			propagateGlobal(entry, ev.Side)
		}
	}
	q.events = q.events[:0]
}

// propagateGlobal implements "For adj_pos = 0 only, propagate
// 'global' properties: the opposite side's snapshot In and Out
// contribute to this side's Out and In_derived, scaled by op-side
// Learn."
func propagateGlobal(entry *lexicon.Entry, side ccltypes.Side) {
	opp := side.Opposite()
	oppRow, ok := entry.PeekRow(opp, 0)
	if !ok {
		return
	}
	row := entry.Row(side, 0)
	snap := oppRow.Snapshot()
	oppLearn := snap.Query(stats.Learn)
	if oppLearn <= 0 {
		return
	}
	row.Add(stats.BaseValue, stats.Out, snap.Query(stats.In)/oppLearn)
	row.Add(stats.DerivedValue, stats.In, snap.Query(stats.Out)/oppLearn)
}
