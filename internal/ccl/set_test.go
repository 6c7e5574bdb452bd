// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ccl

import "testing"

// TestAdvanceGrowsSet mirrors S1 (minimal attach): two units with no
// links still produce a well-formed two-node set.
func TestAdvanceGrowsSet(t *testing.T) {
	s := New()
	if _, err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len: got %d, want 2", s.Len())
	}
	if s.Last() != 1 {
		t.Errorf("Last: got %d, want 1", s.Last())
	}
	if s.HasRV() {
		t.Errorf("HasRV: expected no violation on an unlinked set")
	}
}

// TestAddLinkDirectAdjacency mirrors S2: LAST attaches to its immediate
// left neighbor with a depth-0 link.
func TestAddLinkDirectAdjacency(t *testing.T) {
	s := New()
	mustAdvance(t, s) // position 0: "a"
	mustAdvance(t, s) // position 1: "b"

	if err := s.AddLink(1, 0, Close); err != nil {
		t.Fatalf("AddLink(1, 0, Close): %v", err)
	}

	if head, depth, ok := s.LastOutbound(1, LEFT); !ok || head != 0 || depth != Close {
		t.Errorf("LastOutbound(1, LEFT): got (%v, %v, %v), want (0, Close, true)", head, depth, ok)
	}
	if base, depth, ok := s.Inbound(0, RIGHT); !ok || base != 1 || depth != Close {
		t.Errorf("Inbound(0, RIGHT): got (%v, %v, %v), want (1, Close, true)", base, depth, ok)
	}
	if s.HasRV() {
		t.Errorf("HasRV: expected a direct adjacency link to leave no violation")
	}
}

// TestAddLinkRejectsReusedAdjacency checks the Unused-Adjacency
// predicate: a position already consumed may not be linked again.
func TestAddLinkRejectsReusedAdjacency(t *testing.T) {
	s := New()
	mustAdvance(t, s)
	mustAdvance(t, s)
	mustAdvance(t, s)

	if err := s.AddLink(2, 1, Close); err != nil {
		t.Fatalf("AddLink(2, 1, Close): %v", err)
	}
	if err := s.AddLink(2, 1, Close); err == nil {
		t.Errorf("AddLink: expected a repeat link to the same adjacency to be rejected")
	}
}

func TestCandidatesIncludesLastByDefault(t *testing.T) {
	s := New()
	mustAdvance(t, s)
	mustAdvance(t, s)

	it := s.Candidates()
	base, depths, ok := it.Next(s)
	if !ok || base != 1 || len(depths) == 0 {
		t.Fatalf("Next: got (%v, %v, %v), want (1, non-empty, true)", base, depths, ok)
	}
}

func mustAdvance(t *testing.T, s *Set) Position {
	t.Helper()
	pos, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	return pos
}
