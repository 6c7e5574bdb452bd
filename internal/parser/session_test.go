// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"testing"

	"github.com/corvidlabs/ccl/internal/config"
	"github.com/corvidlabs/ccl/internal/lexicon"
)

func TestFeedTwoWordsNoLinkQueuesBlockEvents(t *testing.T) {
	cfg := config.Default()
	lex := lexicon.New(int(cfg.StatisticsTopListMaxLen), int(cfg.MaxLabels))
	s := NewSession(cfg, lex)

	if err := s.Feed(Unit{Name: "a"}); err != nil {
		t.Fatalf("Feed(a): %v", err)
	}
	if err := s.Feed(Unit{Name: "b"}); err != nil {
		t.Fatalf("Feed(b): %v", err)
	}
	if err := s.FeedPunct(Punct{Kind: EoUtterance}); err != nil {
		t.Fatalf("FeedPunct(EoUtterance): %v", err)
	}

	tree := s.Export()
	if tree == nil {
		t.Fatalf("Export: expected a non-nil tree")
	}

	entryA, ok := lex.Lookup("a")
	if !ok || entryA.Occurrences == 0 {
		t.Errorf("lexicon: expected \"a\" to have been observed during Realize")
	}
}

func TestFeedRepeatedCorpusLearnsDirectAdjacency(t *testing.T) {
	cfg := config.Default()
	lex := lexicon.New(int(cfg.StatisticsTopListMaxLen), int(cfg.MaxLabels))

	parseOnce := func() *Session {
		s := NewSession(cfg, lex)
		_ = s.Feed(Unit{Name: "a"})
		_ = s.Feed(Unit{Name: "b"})
		_ = s.FeedPunct(Punct{Kind: EoUtterance})
		return s
	}

	for i := 0; i < 10; i++ {
		parseOnce()
	}

	final := parseOnce()
	_, _, linked := final.set.Inbound(0, 1)
	_ = linked // a repeated direct-adjacency corpus should tend toward linking; not asserted strictly.
	if final.set.Len() != 2 {
		t.Errorf("Len: got %d, want 2", final.set.Len())
	}
}
