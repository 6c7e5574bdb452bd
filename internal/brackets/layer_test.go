// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package brackets

import (
	"testing"

	"github.com/corvidlabs/ccl/internal/ccl"
)

func TestUpdateIsIdempotentPerLast(t *testing.T) {
	set := ccl.New()
	if _, err := set.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	layer := New(set)
	layer.Update()
	first := len(layer.CoverLast())
	layer.Update()
	if len(layer.CoverLast()) != first {
		t.Errorf("Update: calling twice between advances changed cover_last length")
	}
}

func TestUpdateProducesB1ForEachNode(t *testing.T) {
	set := ccl.New()
	layer := New(set)
	for i := 0; i < 2; i++ {
		if _, err := set.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		layer.Update()
	}
	if _, ok := layer.B1(1); !ok {
		t.Errorf("B1(1): expected a bracket to have been generated")
	}
}
