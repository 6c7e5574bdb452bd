// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexicon

import (
	"fmt"
	"io"
	"sort"

	"github.com/corvidlabs/ccl/internal/ccltypes"
)

// Dump writes, for each entry whose occurrence count is >= minPrint, the
// word, its count, and a rendering of both sides' stats tables in
// descending Seen order. Entries are printed in alphabetical order for stable
// output.
func (l *Lexicon) Dump(w io.Writer, minPrint int) error {
	words := l.Words()
	sort.Strings(words)
	for _, word := range words {
		e := l.entries[word]
		if e.Occurrences < minPrint {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\n", e.Surface, e.Occurrences); err != nil {
			return err
		}
		for _, side := range []ccltypes.Side{ccltypes.LEFT, ccltypes.RIGHT} {
			if err := dumpSide(w, e, side); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpSide(w io.Writer, e *Entry, side ccltypes.Side) error {
	positions := e.AdjacencyPositions(side)
	sort.Ints(positions)
	for _, pos := range positions {
		row, ok := e.PeekRow(side, pos)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s[%d]\n", side, pos); err != nil {
			return err
		}
		for _, entry := range row.IterTop() {
			if _, err := fmt.Fprintf(w, "    %-24s %.4f\n", entry.Label.Key, entry.Seen); err != nil {
				return err
			}
		}
	}
	return nil
}
