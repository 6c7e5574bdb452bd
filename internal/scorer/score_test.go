// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package scorer

import (
	"testing"

	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/lexicon"
	"github.com/corvidlabs/ccl/internal/stats"
)

func TestBestAdjacencyMatchPrefersUnused(t *testing.T) {
	lex := lexicon.New(10, 10)
	a := lex.GetOrCreate("a")
	b := lex.GetOrCreate("b")

	row0 := a.Row(ccltypes.RIGHT, 0)
	row0.Increment(stats.Learn, 10)
	row0.IncrementLabel(ccltypes.Label{Key: "X", Side: ccltypes.RIGHT}, 5)

	b.Labels.InsertFlipped(ccltypes.LEFT, ccltypes.Label{Key: "X", Side: ccltypes.LEFT}, 5)

	m := BestAdjacencyMatch(a, ccltypes.RIGHT, b.Labels, 0)
	if !m.Found {
		t.Fatalf("BestAdjacencyMatch: expected a match")
	}
	if m.Used {
		t.Errorf("BestAdjacencyMatch: expected the unused position 0 to win")
	}
}

func TestScoreProducesPositiveStrengthOnGoodMatch(t *testing.T) {
	lex := lexicon.New(10, 10)
	a := lex.GetOrCreate("a")
	b := lex.GetOrCreate("b")

	row := a.Row(ccltypes.RIGHT, 0)
	row.Increment(stats.Learn, 10)
	row.Add(stats.BaseValue, stats.Out, 8)
	row.IncrementLabel(ccltypes.Label{Key: "X", Side: ccltypes.RIGHT}, 5)
	b.Labels.InsertFlipped(ccltypes.LEFT, ccltypes.Label{Key: "X", Side: ccltypes.LEFT}, 5)

	cand := Score(0, 1, ccltypes.RIGHT, a, b, [2]uint32{}, true, [2][]ccltypes.Depth{{ccltypes.Close}, {ccltypes.Close}})
	if cand.Link.Strength[ccltypes.RIGHT] <= 0 {
		t.Errorf("Score: expected a positive RIGHT strength, got %v", cand.Link.Strength)
	}
}
