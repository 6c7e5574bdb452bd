// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package stats

import (
	"testing"

	"github.com/corvidlabs/ccl/internal/ccltypes"
)

func lbl(key string) ccltypes.Label {
	return ccltypes.Label{Key: key, Side: ccltypes.LEFT}
}

func TestTopKInsertSortsDescending(t *testing.T) {
	top := NewTopK(3)
	top.Insert(lbl("NP"), 1)
	top.Insert(lbl("VP"), 3)
	top.Insert(lbl("PP"), 2)

	got := top.IterTop()
	want := []string{"VP", "PP", "NP"}
	if len(got) != len(want) {
		t.Fatalf("len: got %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Label.Key != w {
			t.Errorf("entry %d: got %q, want %q", i, got[i].Label.Key, w)
		}
	}
}

func TestTopKCapacityDropsWeaker(t *testing.T) {
	top := NewTopK(2)
	top.Insert(lbl("A"), 5)
	top.Insert(lbl("B"), 4)
	top.Insert(lbl("C"), 1) // weaker than tail (4): dropped

	if top.Len() != 2 {
		t.Fatalf("len: got %d, want 2", top.Len())
	}
	if _, ok := top.Seen(lbl("C")); ok {
		t.Errorf("C: expected to be dropped")
	}
}

func TestTopKTieReplacesTailWithRecency(t *testing.T) {
	top := NewTopK(2)
	top.Insert(lbl("A"), 5)
	top.Insert(lbl("B"), 4)
	top.Insert(lbl("C"), 4) // ties the tail: recency wins, C replaces B

	if _, ok := top.Seen(lbl("B")); ok {
		t.Errorf("B: expected to be replaced by tie-breaking recency")
	}
	if seen, ok := top.Seen(lbl("C")); !ok || seen != 4 {
		t.Errorf("C: got (%v, %v), want (4, true)", seen, ok)
	}
}

func TestTopKExistingLabelAccumulatesAndResifts(t *testing.T) {
	top := NewTopK(3)
	top.Insert(lbl("A"), 1)
	top.Insert(lbl("B"), 2)
	top.Insert(lbl("A"), 5) // now 6, should resift to front

	got := top.IterTop()
	if got[0].Label.Key != "A" || got[0].Seen != 6 {
		t.Errorf("front: got %+v, want A=6", got[0])
	}
}

func TestRowSnapshotIsStableAfterMutation(t *testing.T) {
	r := NewRow(10)
	r.Increment(Learn, 10)
	r.Increment(Block, 2)
	r.IncrementLabel(lbl("NP"), 3)

	snap := r.Snapshot()
	if snap.Query(Learn) != 10 {
		t.Fatalf("learn: got %v, want 10", snap.Query(Learn))
	}

	// mutate the live row after snapshotting
	r.Increment(Learn, 100)
	r.IncrementLabel(lbl("NP"), 100)

	if snap.Query(Learn) != 10 {
		t.Errorf("snapshot learn mutated: got %v, want 10", snap.Query(Learn))
	}
	if seen, _ := snap.top.Seen(lbl("NP")); seen != 3 {
		t.Errorf("snapshot label mutated: got %v, want 3", seen)
	}
}
