// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ccl

// AddLink verifies the four addability predicates plus the RV crossing
// restriction, then mutates the set.
func (s *Set) AddLink(base, head Position, d Depth) error {
	if s.closed {
		return errClosedSet
	}
	if s.node(base) == nil || s.node(head) == nil {
		return errUnknownPosition
	}
	if err := s.checkUnusedAdjacency(base, head, d); err != nil {
		return err
	}
	if err := s.checkEquality(base, head, d); err != nil {
		return err
	}
	if err := s.checkForcing(base, head, d); err != nil {
		return err
	}
	if err := s.checkNotCoveredToLast(base, head, d); err != nil {
		return err
	}
	if err := s.checkRV(base, head, d); err != nil {
		return err
	}

	side := directionSide(base, head)
	baseNode := s.node(base)
	headNode := s.node(head)

	if base == s.Last() {
		s.addFromLast(baseNode, headNode, side, d)
	} else {
		s.addIntoLast(baseNode, headNode, side, d)
	}

	idx := adjIndex(base, head, side)
	if err := baseNode.setAdjUsed(side, idx); err != nil {
		return err
	}

	s.updateRV(base, head, side, d)
	return nil
}

// addFromLast handles a link whose base is LAST: append to LAST's
// outbound sequence on side, adopt head's path-endpoint cell for the
// starting depth (pointer sharing), and propagate complete-blocking when
// the link is extended.
func (s *Set) addFromLast(base, head *Node, side Side, d Depth) {
	base.outbound[side] = append(base.outbound[side], outLink{Head: head.Pos, Depth: d})
	if d == Close {
		base.lastOutboundDepth0[side] = head.Pos
	}
	base.paths[side][d] = head.paths[side][d]
	head.inbound[side.Opposite()] = &inLink{Base: base.Pos, Depth: d}
	if d == Extended {
		s.propagateBlocking(base.Pos, side, head.Pos)
	}
}

// addIntoLast handles a link whose head is LAST: fork base's shared
// endpoint for its close-depth chain, extend base's outbound sequence,
// and retarget paths[depth] to LAST.
func (s *Set) addIntoLast(base, head *Node, side Side, d Depth) {
	base.paths[side][Close] = &endpoint{pos: base.paths[side][Close].pos}
	base.outbound[side] = append(base.outbound[side], outLink{Head: head.Pos, Depth: d})
	if d == Close {
		base.lastOutboundDepth0[side] = head.Pos
	}
	base.paths[side][d].pos = head.Pos
	head.inbound[side.Opposite()] = &inLink{Base: base.Pos, Depth: d}
	if d == Extended {
		s.propagateBlocking(base.Pos, side, head.Pos)
	}
}

// propagateBlocking sets complete-blocking at blockedFrom on side for
// every node already reachable from base in that direction, without
// overwriting an existing, closer blocking position.
func (s *Set) propagateBlocking(base Position, side Side, blockedFrom Position) {
	cur := base
	for {
		n := s.node(cur)
		if n == nil {
			return
		}
		if n.completeBlock[side] == nil {
			n.completeBlock[side] = &blockCell{pos: blockedFrom}
		}
		head, _, ok := n.LastOutbound(side)
		if !ok || head == cur {
			return
		}
		cur = head
	}
}
