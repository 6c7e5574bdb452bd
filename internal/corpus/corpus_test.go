// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package corpus

import (
	"strings"
	"testing"

	"github.com/corvidlabs/ccl/internal/parser"
)

func TestPlainReaderSplitsTrailingPunct(t *testing.T) {
	r := NewPlainReader([]byte("the dog barks."), nil)

	var units []string
	var puncts []parser.PunctKind
	for {
		ev, err := r.Next()
		if err != nil {
			break
		}
		if ev.Unit != nil {
			units = append(units, ev.Unit.Name)
		}
		if ev.Punct != nil {
			puncts = append(puncts, ev.Punct.Kind)
		}
	}

	if want := []string{"the", "dog", "barks"}; !equalStrings(units, want) {
		t.Fatalf("units = %v, want %v", units, want)
	}
	if len(puncts) != 1 || puncts[0] != parser.FullStop {
		t.Fatalf("puncts = %v, want [FullStop]", puncts)
	}
}

func TestPTBReaderEmitsEoUtterancePerLine(t *testing.T) {
	r := NewPTBReader(strings.NewReader("the dog barks .\n"))

	var kinds []parser.PunctKind
	var words []string
	for {
		ev, err := r.Next()
		if err != nil {
			break
		}
		if ev.Unit != nil {
			words = append(words, ev.Unit.Name)
		}
		if ev.Punct != nil {
			kinds = append(kinds, ev.Punct.Kind)
		}
	}

	if want := []string{"the", "dog", "barks"}; !equalStrings(words, want) {
		t.Fatalf("words = %v, want %v", words, want)
	}
	if len(kinds) != 2 || kinds[0] != parser.FullStop || kinds[1] != parser.EoUtterance {
		t.Fatalf("kinds = %v, want [FullStop EoUtterance]", kinds)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
