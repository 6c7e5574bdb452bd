// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package scorer

import (
	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/lexicon"
)

// Score builds a fully-scored Candidate for a link between base and head.
// baseEntry/headEntry are the lexicon entries for the two words; baseSide
// is the side at base facing head (so headSide is its opposite).
// usedMask carries each word's adjacency-used bitmap on the side facing
// the other word (from ccl.Node, via the parse driver). allowedDepth
// restricts the permitted depths per side, typically from
// ccl.AddableIter or ccl.Set.LastAddable.
func Score(base, head ccltypes.Position, baseSide ccltypes.Side, baseEntry, headEntry *lexicon.Entry, usedMask [2]uint32, useBothInValues bool, allowedDepth [2][]ccltypes.Depth) Candidate {
	headSide := baseSide.Opposite()

	baseMatch := BestAdjacencyMatch(baseEntry, baseSide, headEntry.Labels, usedMask[baseSide])
	headMatch := BestAdjacencyMatch(headEntry, headSide, baseEntry.Labels, usedMask[headSide])

	matchSide := baseSide
	strong, weak := baseMatch, headMatch
	if headMatch.Strength > baseMatch.Strength {
		matchSide = headSide
		strong, weak = headMatch, baseMatch
	}

	link := Derive(matchSide, strong, weak, useBothInValues)
	applyDepthFilter(&link, allowedDepth)

	return Candidate{Base: base, Head: head, Link: link, AllowedDepth: allowedDepth}
}

// applyDepthFilter zeroes out any side's strength whose derived depth is
// not in the allowed set for that side.
func applyDepthFilter(link *Link, allowed [2][]ccltypes.Depth) {
	for side := 0; side < 2; side++ {
		set := allowed[side]
		if set == nil {
			continue
		}
		ok := false
		for _, d := range set {
			if d == link.Depth[side] {
				ok = true
				break
			}
		}
		if !ok {
			link.Strength[side] = 0
		}
	}
}
