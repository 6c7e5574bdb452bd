// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package learn

import (
	"testing"

	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/lexicon"
	"github.com/corvidlabs/ccl/internal/stats"
)

func TestRealizeAppliesBlockEvent(t *testing.T) {
	lex := lexicon.New(10, 10)
	q := New()
	q.Push("a", ccltypes.LEFT, 0)
	q.Realize(lex)

	entry, ok := lex.Lookup("a")
	if !ok {
		t.Fatalf("Lookup: expected entry for \"a\"")
	}
	if entry.Occurrences != 1 {
		t.Errorf("Occurrences: got %d, want 1", entry.Occurrences)
	}
	row, ok := entry.PeekRow(ccltypes.LEFT, 0)
	if !ok {
		t.Fatalf("PeekRow: expected a row at (LEFT, 0)")
	}
	if row.Query(stats.Learn) != 1 || row.Query(stats.Block) != 1 {
		t.Errorf("row: got Learn=%v Block=%v, want 1, 1", row.Query(stats.Learn), row.Query(stats.Block))
	}
	if q.Len() != 0 {
		t.Errorf("Len: expected queue to be drained after Realize")
	}
}
