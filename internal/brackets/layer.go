// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package brackets

import (
	"github.com/corvidlabs/ccl/internal/ccl"
	"github.com/corvidlabs/ccl/internal/ccltypes"
)

const NoPosition = ccltypes.NoPosition

// Layer maintains the bracket structure over one utterance's ccl.Set
//.
type Layer struct {
	set *ccl.Set

	b1 map[Position]*Bracket
	b2 map[Position]*Bracket

	coverLast  []*Bracket // outermost first
	maxNotEnd  []*Bracket // left-to-right

	bracketingUpTo Position
}

// New returns a bracket layer bound to set. Call Update after every
// ccl.Set.Advance call.
func New(set *ccl.Set) *Layer {
	return &Layer{
		set:            set,
		b1:             map[Position]*Bracket{},
		b2:             map[Position]*Bracket{},
		bracketingUpTo: NoPosition,
	}
}

// CoverLast returns the brackets currently covering LAST, outermost
// first. Callers must not mutate the result.
func (l *Layer) CoverLast() []*Bracket { return l.coverLast }

// MaxNotEnd returns the maximal brackets that do not cover LAST,
// left-to-right. Callers must not mutate the result.
func (l *Layer) MaxNotEnd() []*Bracket { return l.maxNotEnd }

// B1 returns node's minimal covering bracket, if computed.
func (l *Layer) B1(node Position) (*Bracket, bool) {
	b, ok := l.b1[node]
	return b, ok
}

// B2 returns node's escape bracket, if one was generated.
func (l *Layer) B2(node Position) (*Bracket, bool) {
	b, ok := l.b2[node]
	return b, ok
}

// GetMaxBrackets returns the maximal brackets of the current utterance:
// max_not_end concatenated with the outermost entry of cover_last.
func (l *Layer) GetMaxBrackets() []*Bracket {
	out := make([]*Bracket, 0, len(l.maxNotEnd)+1)
	out = append(out, l.maxNotEnd...)
	if len(l.coverLast) > 0 {
		out = append(out, l.coverLast[0])
	}
	return out
}

// Update runs the bracket maintenance procedure for the new LAST. It is
// idempotent per LAST, tracked by bracketingUpTo.
func (l *Layer) Update() {
	last := l.set.Last()
	if last == NoPosition || l.bracketingUpTo == last {
		return
	}
	prevLast := last - 1

	l.detachUncovered(prevLast)
	l.spliceEscape(prevLast)
	l.computeB1AndB2(last)

	l.bracketingUpTo = last
}

// detachUncovered implements step 1: for each cover_last bracket
// (innermost outward), if prevLast's LEFT inbound does not reach inside
// it, or has depth > 1, or is prevLast's own B1's head's inbound, detach
// it, close its right end at prevLast, and promote it to max_not_end.
func (l *Layer) detachUncovered(prevLast Position) {
	if prevLast == NoPosition {
		return
	}
	base, depth, hasInbound := l.set.Inbound(prevLast, ccltypes.LEFT)

	kept := l.coverLast[:0]
	for i := len(l.coverLast) - 1; i >= 0; i-- {
		b := l.coverLast[i]
		detach := !hasInbound || !b.Covers(base) || depth > ccltypes.Close
		if detach {
			b.Close(prevLast)
			l.maxNotEnd = append(l.maxNotEnd, b)
			continue
		}
		kept = append([]*Bracket{b}, kept...)
	}
	l.coverLast = kept
}

// spliceEscape implements step 2: if prevLast's inbound escapes B1 of its
// head, create B2 above B1 for that head.
func (l *Layer) spliceEscape(prevLast Position) {
	if prevLast == NoPosition {
		return
	}
	base, depth, ok := l.set.Inbound(prevLast, ccltypes.LEFT)
	if !ok || depth != ccltypes.Extended {
		return
	}
	head := base
	b1, ok := l.b1[head]
	if !ok || b1.Covers(prevLast) {
		return
	}
	b2 := &Bracket{Left: l.set.LongestPath(head, ccltypes.LEFT, ccltypes.Extended), Right: OpenEnd, head: head, gen: 2, Escapes: prevLast}
	b2.Dominated = append(b2.Dominated, b1)
	l.b2[head] = b2
	if b1.Escapes == NoPosition {
		b1.Escapes = prevLast
	}
}

// computeB1AndB2 implements steps 3-5: build B1(LAST) (and B2(LAST) when
// applicable), assign dominated max_not_end entries, and splice into
// cover_last.
func (l *Layer) computeB1AndB2(last Position) {
	b1 := &Bracket{Left: l.set.LongestPath(last, ccltypes.LEFT, ccltypes.Close), Right: OpenEnd, Escapes: NoPosition, head: last, gen: 1}
	l.b1[last] = b1
	l.adoptDominated(b1, NoPosition)

	var b2 *Bracket
	if _, depth, ok := l.set.LastOutbound(last, ccltypes.LEFT); ok && depth == ccltypes.Extended {
		left := l.set.LongestPath(last, ccltypes.LEFT, ccltypes.Extended)
		b2 = &Bracket{Left: left, Right: OpenEnd, Escapes: NoPosition, head: last, gen: 2}
		l.adoptDominated(b2, b1.Left)
		l.b2[last] = b2
	}

	if len(l.coverLast) > 0 {
		innermost := l.coverLast[len(l.coverLast)-1]
		innermost.Dominated = append(innermost.Dominated, b1)
	}
	l.coverLast = append(l.coverLast, b1)
	if b2 != nil {
		l.coverLast = append(l.coverLast, b2)
	}
}

// adoptDominated pops the tail of max_not_end whose left end is at or
// beyond b's left end (and, if ceiling != NoPosition, strictly left of
// it) into b.Dominated.
func (l *Layer) adoptDominated(b *Bracket, ceiling Position) {
	i := len(l.maxNotEnd)
	for i > 0 {
		cand := l.maxNotEnd[i-1]
		if cand.Left < b.Left {
			break
		}
		if ceiling != NoPosition && cand.Left >= ceiling {
			break
		}
		i--
	}
	b.Dominated = append(b.Dominated, l.maxNotEnd[i:]...)
	l.maxNotEnd = l.maxNotEnd[:i]
}
