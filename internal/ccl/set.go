// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ccl

// Set is the Common Cover Link set for a single utterance: a sorted
// sequence of nodes, one per token position, with the invariants and
// incremental queries the parser driver needs at each advance.
type Set struct {
	nodes []*Node
	closed bool

	rvLeftPos   Position
	rvLeftDepth Depth
}

// New returns an empty CCL set.
func New() *Set {
	return &Set{rvLeftPos: NoPosition}
}

// Len returns the number of nodes (the current LAST position is Len()-1).
func (s *Set) Len() int { return len(s.nodes) }

// Last returns the position of the most recently advanced node.
func (s *Set) Last() Position {
	if len(s.nodes) == 0 {
		return NoPosition
	}
	return Position(len(s.nodes) - 1)
}

func (s *Set) node(pos Position) *Node {
	if pos < 0 || int(pos) >= len(s.nodes) {
		return nil
	}
	return s.nodes[pos]
}

// Advance appends a new node for the next token position. It fails with
// ErrUnresolvedRV if there is an unresolved resolution violation.
func (s *Set) Advance() (Position, error) {
	if s.HasRV() {
		return NoPosition, errUnresolvedRV
	}
	pos := Position(len(s.nodes))
	s.nodes = append(s.nodes, newNode(pos))
	return pos, nil
}

// Close freezes the set; AddLink fails on a closed set.
func (s *Set) Close() error {
	if s.HasRV() {
		return errUnresolvedRV
	}
	s.closed = true
	return nil
}

// HasRV reports whether a resolution violation currently exists.
func (s *Set) HasRV() bool { return s.rvLeftPos != NoPosition }

// MinRVLeftPos returns the left position of the minimal RV, or NoPosition
// if none exists.
func (s *Set) MinRVLeftPos() Position { return s.rvLeftPos }

// MinRVLeftDepth returns the depth the minimal RV requires of any link
// that reaches into it.
func (s *Set) MinRVLeftDepth() Depth { return s.rvLeftDepth }

// Inbound reports node's inbound link on side.
func (s *Set) Inbound(node Position, side Side) (base Position, depth Depth, ok bool) {
	n := s.node(node)
	if n == nil {
		return 0, 0, false
	}
	return n.Inbound(side)
}

// LastOutbound reports node's most recently added outbound link on side.
func (s *Set) LastOutbound(node Position, side Side) (head Position, depth Depth, ok bool) {
	n := s.node(node)
	if n == nil {
		return 0, 0, false
	}
	return n.LastOutbound(side)
}

// LongestPath returns the farthest position reachable from node by
// outbound links on side whose first link has depth firstDepth.
func (s *Set) LongestPath(node Position, side Side, firstDepth Depth) Position {
	n := s.node(node)
	if n == nil {
		return NoPosition
	}
	return n.LongestPath(side, firstDepth)
}

// HasPath reports whether node has an outbound chain on side reaching
// exactly target.
func (s *Set) HasPath(node Position, side Side, target Position) bool {
	n := s.node(node)
	if n == nil {
		return false
	}
	cur := node
	for {
		nd := s.node(cur)
		if nd == nil {
			return false
		}
		head, _, ok := nd.LastOutbound(side)
		if !ok {
			return false
		}
		if head == target {
			return true
		}
		if side == LEFT && head < target {
			return false
		}
		if side == RIGHT && head > target {
			return false
		}
		cur = head
	}
}

// firstOutboundDepth returns the depth of node's nearest (first-added)
// outbound link on side, used to resolve the Equality predicate's "first
// link of the path"").
func firstOutboundDepth(n *Node, side Side) (Depth, bool) {
	list := n.outbound[side]
	if len(list) == 0 {
		return 0, false
	}
	return list[0].Depth, true
}

// UnusedAdj returns the next unused adjacent position on side from node,
// and the minimum depth allowed there, per "Unused adjacency".
func (s *Set) UnusedAdj(node Position, side Side) (head Position, minDepth Depth, ok bool) {
	n := s.node(node)
	if n == nil {
		return 0, 0, false
	}
	last := n.lastOutboundDepth0[side]
	var next Position
	if side == LEFT {
		next = last - 1
	} else {
		next = last + 1
	}
	if next < 0 || int(next) >= len(s.nodes) {
		return 0, 0, false
	}
	if blk := n.Blocking(side); blk != NoPosition {
		if side == LEFT && next < blk {
			return 0, 0, false
		}
		if side == RIGHT && next > blk {
			return 0, 0, false
		}
	}
	if n.isAdjUsed(side, adjIndex(node, next, side)) {
		// the immediate slot is consumed; no closer unused adjacency exists
		// until a link is actually added there.
		return 0, 0, false
	}
	return next, Close, true
}

// UsedMask returns node's adjacency-used bitmap for both sides, for the
// scorer's BestAdjacencyMatch.
func (s *Set) UsedMask(node Position) [2]uint32 {
	n := s.node(node)
	if n == nil {
		return [2]uint32{}
	}
	return n.used
}

// OutboundLinks returns node's outbound link sequence on side, in
// insertion order. Callers must not mutate the result.
func (s *Set) OutboundLinks(node Position, side Side) []outLink {
	n := s.node(node)
	if n == nil {
		return nil
	}
	return n.Outbound(side)
}

// AdjUsed reports whether node's adjacency slot adjPos on side has
// already been marked used.
func (s *Set) AdjUsed(node Position, side Side, adjPos int) bool {
	n := s.node(node)
	if n == nil || adjPos < 0 {
		return false
	}
	return n.isAdjUsed(side, adjPos)
}

// adjIndex converts a (node, neighbor) pair into a 0-based adjacency
// index for the used-bitmap (distance away from node on side).
func adjIndex(node, neighbor Position, side Side) int {
	if side == LEFT {
		return int(node - neighbor - 1)
	}
	return int(neighbor - node - 1)
}
