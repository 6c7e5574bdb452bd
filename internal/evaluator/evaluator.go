// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package evaluator

import (
	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/constituent"
)

// Span is a bracket's (left, right) terminal-position pair, unordered
// across parses since positions are global utterance offsets.
type Span struct {
	Left, Right ccltypes.Position
}

// Bracketing is the bag of non-terminal spans a tree denotes, excluding
// single-word (terminal) spans — only constituents wider than one word
// are scored.
type Bracketing []Span

// Brackets flattens tree into its bag of non-terminal spans.
func Brackets(tree *constituent.Node) Bracketing {
	var out Bracketing
	var walk func(n *constituent.Node)
	walk = func(n *constituent.Node) {
		if n == nil {
			return
		}
		if !n.IsTerminal() && n.Right > n.Left {
			out = append(out, Span{Left: n.Left, Right: n.Right})
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree)
	return out
}

// Result is one structure's precision/recall/F1 plus the count of its
// brackets that cross a gold bracket.
type Result struct {
	Matched   int
	Got       int
	Want      int
	Crossing  int
	Precision float64
	Recall    float64
	F1        float64
}

// Score compares got against want, both already flattened to bags of
// spans via Brackets.
func Score(got, want Bracketing) Result {
	r := Result{Got: len(got), Want: len(want)}

	wantSet := map[Span]int{}
	for _, s := range want {
		wantSet[s]++
	}
	matched := map[Span]int{}
	for _, s := range got {
		if wantSet[s] > matched[s] {
			matched[s]++
			r.Matched++
		}
	}

	for _, g := range got {
		for _, w := range want {
			if crosses(g, w) {
				r.Crossing++
				break
			}
		}
	}

	if r.Got > 0 {
		r.Precision = float64(r.Matched) / float64(r.Got)
	}
	if r.Want > 0 {
		r.Recall = float64(r.Matched) / float64(r.Want)
	}
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}
	return r
}

// crosses reports whether spans a and b cross: they overlap but neither
// contains the other.
func crosses(a, b Span) bool {
	if a == b {
		return false
	}
	overlaps := a.Left <= b.Right && b.Left <= a.Right
	if !overlaps {
		return false
	}
	aContainsB := a.Left <= b.Left && b.Right <= a.Right
	bContainsA := b.Left <= a.Left && a.Right <= b.Right
	return !aContainsB && !bContainsA
}

// Accumulator totals Score results across many utterances by summing
// matched/got/want/crossing counts, rather than averaging each
// utterance's precision/recall ratio.
type Accumulator struct {
	matched, got, want, crossing int
	last                         Result
}

// Add folds one utterance's result into the running totals and remembers
// it as the "last" result.
func (a *Accumulator) Add(r Result) {
	a.matched += r.Matched
	a.got += r.Got
	a.want += r.Want
	a.crossing += r.Crossing
	a.last = r
}

// Last returns the most recently added result.
func (a *Accumulator) Last() Result { return a.last }

// Total returns the corpus-level precision/recall/F1/crossing count.
func (a *Accumulator) Total() Result {
	r := Result{Matched: a.matched, Got: a.got, Want: a.want, Crossing: a.crossing}
	if r.Got > 0 {
		r.Precision = float64(r.Matched) / float64(r.Got)
	}
	if r.Want > 0 {
		r.Recall = float64(r.Matched) / float64(r.Want)
	}
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}
	return r
}
