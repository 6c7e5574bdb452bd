// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package constituent

import (
	"testing"

	"github.com/corvidlabs/ccl/internal/brackets"
	"github.com/corvidlabs/ccl/internal/ccl"
)

func TestExportWrapsUnlinkedWordsUnderATopNode(t *testing.T) {
	set := ccl.New()
	layer := brackets.New(set)
	for i := 0; i < 2; i++ {
		if _, err := set.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		layer.Update()
	}

	tree := Export([]string{"a", "b"}, layer)
	if tree == nil {
		t.Fatalf("Export: expected a non-nil tree")
	}
	if tree.IsTerminal() {
		t.Errorf("Export: expected a non-terminal root for two unlinked words")
	}
}
