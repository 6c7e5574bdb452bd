// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package labels

import (
	"testing"

	"github.com/corvidlabs/ccl/internal/ccltypes"
)

func TestInsertFlippedStoresOppositeSide(t *testing.T) {
	tbl := NewTable(10)
	tbl.InsertFlipped(ccltypes.LEFT, ccltypes.Label{Key: "NP", Side: ccltypes.LEFT}, 2.5)

	// a lookup for the opposite-side label should succeed via plain
	// equality, since the stored entry's side bit was flipped on insert.
	if _, ok := tbl.Lookup(ccltypes.LEFT, ccltypes.Label{Key: "NP", Side: ccltypes.LEFT}); ok {
		t.Errorf("lookup by un-flipped label should miss")
	}
	if strength, ok := tbl.Lookup(ccltypes.LEFT, ccltypes.Label{Key: "NP", Side: ccltypes.RIGHT}); !ok || strength != 2.5 {
		t.Errorf("lookup by flipped label: got (%v, %v), want (2.5, true)", strength, ok)
	}
}

func TestInsertNeverDecreasesStrength(t *testing.T) {
	tbl := NewTable(10)
	label := ccltypes.Label{Key: "VP", Side: ccltypes.LEFT}
	tbl.Insert(ccltypes.LEFT, label, 5)
	tbl.Insert(ccltypes.LEFT, label, 2)

	if s, _ := tbl.Lookup(ccltypes.LEFT, label); s != 5 {
		t.Errorf("strength: got %v, want 5 (should never decrease)", s)
	}
	tbl.Insert(ccltypes.LEFT, label, 9)
	if s, _ := tbl.Lookup(ccltypes.LEFT, label); s != 9 {
		t.Errorf("strength: got %v, want 9", s)
	}
}

func TestInsertCapacityReplacesWeakest(t *testing.T) {
	tbl := NewTable(2)
	tbl.Insert(ccltypes.LEFT, ccltypes.Label{Key: "A"}, 1)
	tbl.Insert(ccltypes.LEFT, ccltypes.Label{Key: "B"}, 2)
	tbl.Insert(ccltypes.LEFT, ccltypes.Label{Key: "C"}, 3) // stronger than weakest (A=1)

	if _, ok := tbl.Lookup(ccltypes.LEFT, ccltypes.Label{Key: "A"}); ok {
		t.Errorf("A should have been evicted")
	}
	if _, ok := tbl.Lookup(ccltypes.LEFT, ccltypes.Label{Key: "C"}); !ok {
		t.Errorf("C should have been inserted")
	}
}
