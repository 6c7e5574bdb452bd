// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexiconstore

import (
	"path/filepath"
	"testing"

	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/lexicon"
	"github.com/corvidlabs/ccl/internal/stats"
)

func TestScalarsRoundTrip(t *testing.T) {
	want := [numScalars]float64{1, 2, 3, 4, 5, 6, 7, 8}
	got := decodeScalars(encodeScalars(want))
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.db")

	store, err := CreateStore(path, false)
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}

	lex := lexicon.New(10, 10)
	entry := lex.GetOrCreate("dog")
	entry.Occurrences = 3
	row := entry.Row(ccltypes.LEFT, 0)
	row.Increment(stats.Learn, 5)
	row.IncrementLabel(ccltypes.Label{Key: "NOUN", Side: ccltypes.LEFT}, 2)
	entry.Labels.Insert(ccltypes.RIGHT, ccltypes.Label{Key: "NOUN", Side: ccltypes.LEFT}, 2)

	if err := store.Save(lex); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store2, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store2.Close()

	lex2, err := store2.Load(10, 10)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	loaded, ok := lex2.Lookup("dog")
	if !ok {
		t.Fatalf("dog not found after reload")
	}
	if loaded.Occurrences != 3 {
		t.Fatalf("occurrences = %d, want 3", loaded.Occurrences)
	}
	if strength, ok := loaded.Labels.Lookup(ccltypes.RIGHT, ccltypes.Label{Key: "NOUN", Side: ccltypes.LEFT}); !ok || strength != 2 {
		t.Fatalf("label lookup = (%v, %v), want (2, true)", strength, ok)
	}
}
