// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ccl

// LastAddable returns the current next-unused adjacency on the LEFT side
// of LAST, plus the set of depths allowed there under equality, forcing,
// and RV.
func (s *Set) LastAddable() (head Position, depths []Depth, ok bool) {
	last := s.Last()
	if last == NoPosition {
		return NoPosition, nil, false
	}
	want, minDepth, ok := s.UnusedAdj(last, LEFT)
	if !ok {
		return NoPosition, nil, false
	}
	var allowed []Depth
	for d := minDepth; d <= Extended; d++ {
		if s.checkEquality(last, want, d) == nil &&
			s.checkForcing(last, want, d) == nil &&
			s.checkRV(last, want, d) == nil {
			allowed = append(allowed, d)
		}
	}
	if len(allowed) == 0 {
		return NoPosition, nil, false
	}
	return want, allowed, true
}

// candidate is one entry of the prefix-adjacency list: a position with an
// unused RIGHT adjacency toward LAST, and the depths currently allowed
// there.
type candidate struct {
	Pos    Position
	Depths []Depth
}

// AddableIter is the incremental addable-link iterator.
// It is rebuilt on every call to Candidates; the set does not retain it
// across parse steps, since the prefix-adjacency list depends only on
// the set's current state and is cheap to recompute for utterance-sized
// inputs.
type AddableIter struct {
	candidates []candidate
	pos        int
}

// Candidates enumerates the current prefix-adjacency list in increasing
// distance from LAST.
func (s *Set) Candidates() *AddableIter {
	last := s.Last()
	it := &AddableIter{}
	if last == NoPosition {
		return it
	}

	it.candidates = append(it.candidates, candidate{Pos: last, Depths: []Depth{Close}})

	lastNode := s.node(last)
	inHead, _, hasInbound := lastNode.Inbound(LEFT)
	if !hasInbound {
		// no inbound link yet: the prefix-adjacency list is cleared
		//.
		return it
	}

	for p := last - 1; p >= 0 && p >= inHead; p-- {
		head, minDepth, ok := s.UnusedAdj(p, RIGHT)
		if !ok || head != last {
			continue
		}
		var depths []Depth
		for d := minDepth; d <= Extended; d++ {
			if s.checkEquality(p, head, d) == nil && s.checkForcing(p, head, d) == nil && s.checkRV(p, head, d) == nil {
				depths = append(depths, d)
			}
		}
		if len(depths) == 0 {
			continue
		}
		it.candidates = append(it.candidates, candidate{Pos: p, Depths: depths})
	}
	return it
}

// Next returns the next candidate base position and its allowed depths,
// or ok=false when the list is exhausted or the RV requires the head to
// be at least min_RV_left_pos.
func (it *AddableIter) Next(s *Set) (base Position, depths []Depth, ok bool) {
	for it.pos < len(it.candidates) {
		c := it.candidates[it.pos]
		it.pos++
		if s.HasRV() && c.Pos < s.rvLeftPos {
			continue
		}
		return c.Pos, c.Depths, true
	}
	return NoPosition, nil, false
}
