// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexicon

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/stats"
)

func TestGetOrCreateInterns(t *testing.T) {
	lex := New(10, 10)
	a := lex.GetOrCreate("Fox")
	b := lex.GetOrCreate("fox")
	if a != b {
		t.Errorf("GetOrCreate: expected case-insensitive interning to share one entry")
	}
	if lex.Len() != 1 {
		t.Errorf("Len: got %d, want 1", lex.Len())
	}
}

func TestRowCreatesLazily(t *testing.T) {
	lex := New(10, 10)
	e := lex.GetOrCreate("dog")
	row := e.Row(ccltypes.RIGHT, 0)
	row.Increment(stats.Learn, 1)

	again := e.Row(ccltypes.RIGHT, 0)
	if again.Query(stats.Learn) != 1 {
		t.Errorf("Row: expected the same row to be returned on repeat lookup")
	}
}

func TestRefreshLabelsFlipsIntoLabelTable(t *testing.T) {
	lex := New(10, 10)
	e := lex.GetOrCreate("run")
	row := e.Row(ccltypes.LEFT, 0)
	row.IncrementLabel(ccltypes.Label{Key: "VP", Side: ccltypes.LEFT}, 4)

	e.RefreshLabels(ccltypes.LEFT)

	if strength, ok := e.Labels.Lookup(ccltypes.LEFT, ccltypes.Label{Key: "VP", Side: ccltypes.RIGHT}); !ok || strength != 4 {
		t.Errorf("Labels.Lookup: got (%v, %v), want (4, true)", strength, ok)
	}
}

func TestDumpSkipsBelowMinPrint(t *testing.T) {
	lex := New(10, 10)
	lex.Observe("common")
	lex.Observe("common")
	lex.Observe("rare")

	var buf bytes.Buffer
	if err := lex.Dump(&buf, 2); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "common\t2") {
		t.Errorf("Dump: expected common to be printed, got %q", out)
	}
	if strings.Contains(out, "rare") {
		t.Errorf("Dump: expected rare to be filtered out, got %q", out)
	}
}
