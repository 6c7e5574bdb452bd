// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package scorer

import (
	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/labels"
	"github.com/corvidlabs/ccl/internal/lexicon"
	"github.com/corvidlabs/ccl/internal/stats"
)

// Match is the best adjacency match found on one side of a word.
type Match struct {
	AdjPos   int
	Used     bool
	Label    ccltypes.Label
	Strength float64
	Snapshot stats.Snapshot
	Found    bool
}

// BestAdjacencyMatch scans entry's stat tables on side, in increasing
// adjacency position, stopping after the first position that is not
// marked used in usedMask. Among the candidates visited, an unused adjacency
// always beats a used one; otherwise the higher match strength wins. A
// label's match strength is min(Seen/Learn, label_table_strength) for
// every top label whose Seen/Learn exceeds Block/Learn, looked up
// against otherLabels on the opposite side.
func BestAdjacencyMatch(entry *lexicon.Entry, side ccltypes.Side, otherLabels *labels.Table, usedMask uint32) Match {
	var bestUsed, bestUnused Match

	for adjPos := 0; adjPos < lexicon.DefaultAdjacencyCacheCap; adjPos++ {
		used := usedMask&(1<<uint(adjPos)) != 0
		row, ok := entry.PeekRow(side, adjPos)
		if ok {
			snap := row.Snapshot()
			if learn := snap.Query(stats.Learn); learn > 0 {
				block := snap.Query(stats.Block)
				for _, le := range snap.IterTop() {
					ratio := le.Seen / learn
					if ratio <= block/learn {
						continue
					}
					labelStrength, ok := otherLabels.Lookup(side.Opposite(), le.Label)
					if !ok {
						continue
					}
					strength := ratio
					if labelStrength < strength {
						strength = labelStrength
					}
					cand := Match{AdjPos: adjPos, Used: used, Label: le.Label, Strength: strength, Snapshot: snap, Found: true}
					if used {
						if !bestUsed.Found || strength > bestUsed.Strength {
							bestUsed = cand
						}
					} else {
						if !bestUnused.Found || strength > bestUnused.Strength {
							bestUnused = cand
						}
					}
				}
			}
		}
		if !used {
			break
		}
	}

	if bestUnused.Found {
		return bestUnused
	}
	return bestUsed
}
