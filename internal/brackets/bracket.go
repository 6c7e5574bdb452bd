// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package brackets

import "github.com/corvidlabs/ccl/internal/ccltypes"

type Position = ccltypes.Position

// OpenEnd marks a bracket whose right end is "up to LAST".
const OpenEnd = Position(-1)

// Bracket is a [left, right] span with an ordered list of direct child
// brackets and an escape marker.
type Bracket struct {
	Left  Position
	Right Position // OpenEnd if not yet closed

	Dominated []*Bracket
	Escapes   Position // NoPosition if it does not escape

	// head is the node this bracket was generated for, and gen
	// distinguishes B1 from B2 for that node.
	head Position
	gen  int
}

// Closed reports whether the bracket's right end has been fixed.
func (b *Bracket) Closed() bool { return b.Right != OpenEnd }

// Close fixes the bracket's right end at pos, if not already closed.
func (b *Bracket) Close(pos Position) {
	if !b.Closed() {
		b.Right = pos
	}
}

// Covers reports whether pos lies within [Left, Right] (or [Left, +inf)
// if still open).
func (b *Bracket) Covers(pos Position) bool {
	if pos < b.Left {
		return false
	}
	return !b.Closed() || pos <= b.Right
}
