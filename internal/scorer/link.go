// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package scorer

import (
	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/stats"
)

// Link is the derived strength and depth for each side of a candidate
// link, indexed by ccltypes.Side.
type Link struct {
	Strength [2]float64
	Depth    [2]ccltypes.Depth
}

// Candidate is a fully-scored candidate link between a prefix position
// and LAST.
type Candidate struct {
	Base Position
	Head Position
	Link Link

	// AllowedDepth[side] restricts the depths permitted for this
	// candidate on that side, from the addable-link iterator. nil means no restriction.
	AllowedDepth [2][]ccltypes.Depth
}

type Position = ccltypes.Position

// Derive computes link strengths and depths from the two sides' best
// adjacency matches. matchSide is the side with the
// stronger adjacency match (the "strong side"); useBothInValues mirrors
// config.Config.CCLBasicUseBothInValues.
func Derive(matchSide ccltypes.Side, strong, weak Match, useBothInValues bool) Link {
	opp := matchSide.Opposite()
	var link Link

	outBase := strong.Snapshot.Query(stats.Out)
	learn := strong.Snapshot.Query(stats.Learn)
	strength := floorZero(min2(safeDiv(outBase, learn), strong.Strength))
	link.Strength[matchSide] = strength
	link.Depth[matchSide] = ccltypes.Close

	baseIn := weak.Snapshot.Query(stats.In)
	derivedIn := weak.Snapshot.Get(stats.DerivedValue, stats.In)
	weakLearn := weak.Snapshot.Query(stats.Learn)

	var inVal float64
	if useBothInValues && derivedIn <= 0 && abs(baseIn) >= abs(derivedIn) {
		inVal = safeDiv(baseIn, weakLearn)
	} else {
		inVal = safeDiv(derivedIn, weakLearn)
	}
	oppStrength := floorZero(min2(inVal, weak.Strength))
	link.Strength[opp] = oppStrength

	depth := ccltypes.Close
	if oppStrength <= 0 && baseIn < 0 && derivedIn > 0 {
		depth = ccltypes.Extended
	}
	link.Depth[opp] = depth

	return link
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
