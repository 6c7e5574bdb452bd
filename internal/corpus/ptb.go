// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package corpus

import (
	"bufio"
	"io"

	"github.com/corvidlabs/ccl/internal/parser"
	"github.com/corvidlabs/ccl/internal/punct"
)

// PTBReader reads a Penn-Treebank-style corpus: whitespace-separated
// tokens, one sentence per line, punctuation already split from words
// (e.g. "the dog barks ." ). Lines are scanned with bufio.Scanner, a
// common approach for line-oriented input.
type PTBReader struct {
	scanner *bufio.Scanner
	table   punct.Table
	pending []Event
	sawEOF  bool
}

// NewPTBReader returns a reader over r. Each line is treated as one
// utterance and an EoUtterance punct is emitted at the end of every
// non-empty line.
func NewPTBReader(r io.Reader) *PTBReader {
	return &PTBReader{scanner: bufio.NewScanner(r), table: punct.Penn}
}

func (r *PTBReader) Next() (Event, error) {
	for len(r.pending) == 0 {
		if !r.scanLine() {
			return Event{}, io.EOF
		}
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, nil
}

func (r *PTBReader) scanLine() bool {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		fields := splitFields(line)
		if len(fields) == 0 {
			continue
		}
		for _, tok := range fields {
			if kind, ok := r.table.Lookup(tok); ok {
				r.pending = append(r.pending, Event{Punct: &parser.Punct{Kind: kind}})
				continue
			}
			r.pending = append(r.pending, Event{Unit: &parser.Unit{Name: tok}})
		}
		r.pending = append(r.pending, Event{Punct: &parser.Punct{Kind: parser.EoUtterance}})
		return true
	}
	return false
}

func splitFields(line string) []string {
	var fields []string
	start := -1
	for i, ch := range line {
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			if start >= 0 {
				fields = append(fields, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, line[start:])
	}
	return fields
}
