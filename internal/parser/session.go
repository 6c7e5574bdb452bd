// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"github.com/corvidlabs/ccl/internal/brackets"
	"github.com/corvidlabs/ccl/internal/ccl"
	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/config"
	"github.com/corvidlabs/ccl/internal/constituent"
	"github.com/corvidlabs/ccl/internal/learn"
	"github.com/corvidlabs/ccl/internal/lexicon"
	"github.com/corvidlabs/ccl/internal/scorer"
	"github.com/corvidlabs/ccl/internal/trace"
)

// Session drives one utterance through advance / bracket-update /
// candidate-score-link / learn-enqueue. A corpus stream is processed with
// a new Session per utterance, all sharing one lexicon.
type Session struct {
	cfg *config.Config
	lex *lexicon.Lexicon

	set   *ccl.Set
	layer *brackets.Layer
	queue *learn.Queue

	words    []string
	leftStop []bool

	pendingRightStop bool

	sink trace.Sink
}

// NewSession returns a session ready to receive the first Unit or Punct
// of an utterance. Trace events go nowhere until WithTrace is applied.
func NewSession(cfg *config.Config, lex *lexicon.Lexicon) *Session {
	set := ccl.New()
	return &Session{
		cfg:   cfg,
		lex:   lex,
		set:   set,
		layer: brackets.New(set),
		queue: learn.New(),
		sink:  trace.NopSink{},
	}
}

// WithTrace installs sink as the session's trace destination.
func (s *Session) WithTrace(sink trace.Sink) *Session {
	if sink != nil {
		s.sink = sink
	}
	return s
}

// Feed advances the set with u, runs the attach loop unless LAST opens
// the utterance or is stop-punctuated on the left, and always enqueues
// LAST's learning events afterward.
func (s *Session) Feed(u Unit) error {
	pos, err := s.set.Advance()
	if err != nil {
		return err
	}
	s.words = append(s.words, u.Name)
	leftStop := s.pendingRightStop
	s.leftStop = append(s.leftStop, leftStop)
	s.pendingRightStop = false

	entry := s.lex.GetOrCreate(u.Name)
	for _, label := range u.Labels {
		entry.Labels.Insert(ccltypes.LEFT, ccltypes.Label{Key: label, Side: ccltypes.LEFT}, 1)
		entry.Labels.Insert(ccltypes.RIGHT, ccltypes.Label{Key: label, Side: ccltypes.RIGHT}, 1)
	}

	s.layer.Update()
	s.sink.Event(trace.Utterance, "advance", "pos", pos, "word", u.Name, "leftStop", leftStop)

	if pos != 0 && !leftStop {
		if err := s.attach(pos); err != nil {
			return err
		}
	}
	s.learn(pos)
	return nil
}

// FeedPunct applies a punctuation token: EoUtterance
// terminates the utterance; other stopping kinds set a pending LEFT stop
// for the next unit.
func (s *Session) FeedPunct(p Punct) error {
	if p.Kind == EoUtterance {
		return s.endUtterance()
	}
	if p.Kind.IsStopping() && s.cfg.UseStoppingPunct {
		s.pendingRightStop = true
	}
	return nil
}

// Words returns the utterance's words in position order.
func (s *Session) Words() []string { return s.words }

// Layer exposes the bracket layer, e.g. for constituent export.
func (s *Session) Layer() *brackets.Layer { return s.layer }

func (s *Session) word(pos ccltypes.Position) string {
	if int(pos) < 0 || int(pos) >= len(s.words) {
		return ""
	}
	return s.words[pos]
}

// attach implements steps 3-4: build the direct-adjacency
// candidate, then repeatedly pick and add the strongest candidate from
// the prefix-adjacency list and the last-addable candidate until
// quiescence.
func (s *Session) attach(last ccltypes.Position) error {
	if head, minDepth, ok := s.set.UnusedAdj(last, ccltypes.LEFT); ok && head == last-1 {
		depths := []ccltypes.Depth{minDepth}
		cand := s.score(last-1, last, ccltypes.RIGHT, [2][]ccltypes.Depth{{}, depths})
		if best, side := strongestSide(cand.Link); best > 0 {
			if err := s.commitLink(cand.Base, cand.Head, cand.Link.Depth[side]); err != nil {
				return err
			}
		}
	}

	for {
		picked, ok := s.pickCandidate(last)
		if !ok {
			return nil
		}
		side := directionSide(picked.Base, picked.Head)
		if err := s.commitLink(picked.Base, picked.Head, picked.Link.Depth[side]); err != nil {
			return err
		}
	}
}

// pickCandidate implements the primary/potential comparator selection of
// step 4. It is a simplified reading of the full tie-break chain: the
// higher strength wins, and the last-candidate wins at equal strength
// against the best prefix candidate (its base, LAST, is always the
// greater position). Whether a candidate's chosen adjacency is used is
// not compared across candidates; only scorer.BestAdjacencyMatch prefers
// an unused adjacency, within one side of one candidate. The
// potential-comparator fallback (labels-above-Block count, then strongest
// label) is used when no candidate has positive strength but an RV is
// open; length/direction tiebreaks are not distinguished.
func (s *Session) pickCandidate(last ccltypes.Position) (scorer.Candidate, bool) {
	it := s.set.Candidates()
	var best scorer.Candidate
	var bestStrength float64
	found := false

	for {
		base, depths, ok := it.Next(s.set)
		if !ok {
			break
		}
		if base == last {
			continue // direct adjacency already handled
		}
		cand := s.score(base, last, ccltypes.RIGHT, [2][]ccltypes.Depth{{}, depths})
		strength, _ := strongestSide(cand.Link)
		if !found || strength > bestStrength {
			best, bestStrength, found = cand, strength, true
		}
	}

	if lastHead, lastDepths, ok := s.set.LastAddable(); ok {
		cand := s.score(last, lastHead, ccltypes.LEFT, [2][]ccltypes.Depth{lastDepths, {}})
		strength, _ := strongestSide(cand.Link)
		if !found || strength >= bestStrength {
			best, bestStrength, found = cand, strength, true
		}
	}

	if !found || bestStrength <= 0 {
		if s.set.HasRV() {
			return s.pickPotential(last)
		}
		return scorer.Candidate{}, false
	}
	return best, true
}

// pickPotential implements the potential comparator: among the same
// candidate set, prefer the one whose matched row has the most labels
// above Block, then the strongest single label.
func (s *Session) pickPotential(last ccltypes.Position) (scorer.Candidate, bool) {
	it := s.set.Candidates()
	var best scorer.Candidate
	var bestCount int
	var bestStrongest float64
	found := false

	consider := func(cand scorer.Candidate, side ccltypes.Side) {
		entry, ok := s.lex.Lookup(s.word(cand.Base))
		if !ok {
			return
		}
		row, ok := entry.PeekRow(side, 0)
		if !ok {
			return
		}
		snap := row.Snapshot()
		if !found || snap.NumAboveBlock > bestCount ||
			(snap.NumAboveBlock == bestCount && snap.Strongest > bestStrongest) {
			best, bestCount, bestStrongest, found = cand, snap.NumAboveBlock, snap.Strongest, true
		}
	}

	for {
		base, depths, ok := it.Next(s.set)
		if !ok {
			break
		}
		if base == last {
			continue
		}
		cand := s.score(base, last, ccltypes.RIGHT, [2][]ccltypes.Depth{{}, depths})
		consider(cand, ccltypes.RIGHT)
	}
	if lastHead, lastDepths, ok := s.set.LastAddable(); ok {
		cand := s.score(last, lastHead, ccltypes.LEFT, [2][]ccltypes.Depth{lastDepths, {}})
		consider(cand, ccltypes.LEFT)
	}
	return best, found
}

func (s *Session) score(base, head ccltypes.Position, baseSide ccltypes.Side, allowed [2][]ccltypes.Depth) scorer.Candidate {
	baseEntry := s.lex.GetOrCreate(s.word(base))
	headEntry := s.lex.GetOrCreate(s.word(head))
	headSide := baseSide.Opposite()

	var usedMask [2]uint32
	usedMask[baseSide] = s.set.UsedMask(base)[baseSide]
	usedMask[headSide] = s.set.UsedMask(head)[headSide]

	return scorer.Score(base, head, baseSide, baseEntry, headEntry, usedMask, s.cfg.CCLBasicUseBothInValues, allowed)
}

// commitLink adds the link to the set, refreshes the bracket layer, and
// enqueues the learning event for whichever endpoint is the "base" of
// the attachment.
func (s *Session) commitLink(base, head ccltypes.Position, depth ccltypes.Depth) error {
	dir := directionSide(base, head)
	if err := s.set.AddLink(base, head, depth); err != nil {
		return err
	}
	s.layer.Update()
	s.sink.Event(trace.Parser, "link", "base", base, "head", head, "depth", depth, "dir", dir)
	s.queue.PushLink(s.word(base), dir, adjDistance(base, head, dir), s.word(head))
	return nil
}

func directionSide(base, head ccltypes.Position) ccltypes.Side {
	if head < base {
		return ccltypes.LEFT
	}
	return ccltypes.RIGHT
}

func adjDistance(base, head ccltypes.Position, side ccltypes.Side) int {
	if side == ccltypes.LEFT {
		return int(base - head - 1)
	}
	return int(head - base - 1)
}

// learn enqueues every statistics update triggered by last having just
// been attached: one or more events crediting last's own LEFT side, then
// one event per earlier word whose RIGHT side is still open toward last.
func (s *Session) learn(last ccltypes.Position) {
	s.learnLeft(last)
	s.learnRight(last)
}

// learnLeft credits last's own LEFT side: a block event if last opens the
// utterance or is stop-punctuated on the left, otherwise one event per
// existing LEFT outbound link (crediting each occupied adjacency slot in
// turn) plus one final event for the next slot — a link if it is still
// addable, a block if it is not.
func (s *Session) learnLeft(last ccltypes.Position) {
	if last == 0 || s.leftStop[last] {
		s.queue.Push(s.word(last), ccltypes.LEFT, 0)
		return
	}

	adjPos := 0
	canLearnMore := true
	for _, link := range s.set.OutboundLinks(last, ccltypes.LEFT) {
		s.queue.PushLink(s.word(last), ccltypes.LEFT, adjPos, s.word(link.Head))
		if !s.set.AdjUsed(last, ccltypes.LEFT, adjPos) {
			canLearnMore = false
			break
		}
		adjPos++
	}
	if !canLearnMore {
		return
	}

	if head, minDepth, ok := s.set.UnusedAdj(last, ccltypes.LEFT); ok && minDepth <= ccltypes.Extended {
		s.queue.PushLink(s.word(last), ccltypes.LEFT, adjPos, s.word(head))
	} else {
		s.queue.Push(s.word(last), ccltypes.LEFT, adjPos)
	}
}

// learnRight walks backward from the word immediately left of adjUnit,
// following each word's LEFT inbound link, crediting the RIGHT side of
// every word that still has an open adjacency slot reaching toward
// adjUnit. It stops at the first word whose RIGHT side is already linked
// directly to adjUnit. adjUnit may be one past the last position, in
// which case every credited slot is a block (there is no adjacent word).
func (s *Session) learnRight(adjUnit ccltypes.Position) {
	adjToLearn := ccltypes.NoPosition
	if adjUnit <= s.set.Last() {
		adjToLearn = adjUnit
	}

	for pos := adjUnit - 1; pos >= 0; {
		linkedToAdjUnit := false
		if head, _, ok := s.set.LastOutbound(pos, ccltypes.RIGHT); ok && head == adjUnit {
			linkedToAdjUnit = true
		}

		adjPos := len(s.set.OutboundLinks(pos, ccltypes.RIGHT))
		if linkedToAdjUnit {
			adjPos--
		}

		if adjPos == 0 || s.set.AdjUsed(pos, ccltypes.RIGHT, adjPos-1) {
			isBlock := adjToLearn == ccltypes.NoPosition
			if !isBlock && pos == adjToLearn-1 && int(adjToLearn) < len(s.leftStop) && s.leftStop[adjToLearn] {
				isBlock = true
			}
			if isBlock {
				s.queue.Push(s.word(pos), ccltypes.RIGHT, adjPos)
			} else {
				s.queue.PushLink(s.word(pos), ccltypes.RIGHT, adjPos, s.word(adjToLearn))
			}
		}

		if linkedToAdjUnit {
			return
		}

		base, _, ok := s.set.Inbound(pos, ccltypes.LEFT)
		if !ok || base == pos {
			return
		}
		pos = base
	}
}

// strongestSide returns the larger of the link's two side strengths and
// which side it belongs to.
func strongestSide(l scorer.Link) (float64, ccltypes.Side) {
	if l.Strength[ccltypes.RIGHT] >= l.Strength[ccltypes.LEFT] {
		return l.Strength[ccltypes.RIGHT], ccltypes.RIGHT
	}
	return l.Strength[ccltypes.LEFT], ccltypes.LEFT
}

// endUtterance implements "When end-of-utterance punctuation
// arrives": close the set, run terminal learning, and drain the queue
// into the lexicon. The constituent tree is built separately by Export.
func (s *Session) endUtterance() error {
	if err := s.set.Close(); err != nil {
		return err
	}
	s.learnRight(ccltypes.Position(len(s.words)))
	s.sink.Event(trace.CCLSet, "close", "words", len(s.words), "queued", s.queue.Len())
	s.queue.Realize(s.lex)
	return nil
}

// Export builds the constituent tree for the utterance parsed so far.
func (s *Session) Export() *constituent.Node {
	return constituent.Export(s.words, s.layer)
}
