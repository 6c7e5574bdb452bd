// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package corpus

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/corvidlabs/ccl/internal/parser"
	"github.com/corvidlabs/ccl/internal/punct"
)

// PlainReader scans whitespace-separated words from raw text, splitting
// trailing punctuation off each token and classifying it against a
// punct.Table. It is a byte-position lexer advancing over runes,
// skipping whitespace and collecting each run of non-whitespace runes as
// one token.
type PlainReader struct {
	input []byte
	pos   int
	table punct.Table

	pending []Event
}

// NewPlainReader returns a reader over input, using table to classify
// punctuation tokens.
func NewPlainReader(input []byte, table punct.Table) *PlainReader {
	if table == nil {
		table = punct.Plain
	}
	return &PlainReader{input: input, table: table}
}

func (r *PlainReader) Next() (Event, error) {
	for len(r.pending) == 0 {
		if !r.scanOne() {
			return Event{}, io.EOF
		}
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, nil
}

func (r *PlainReader) isEOF() bool { return r.pos >= len(r.input) }

func (r *PlainReader) current() rune {
	if r.isEOF() {
		return -1
	}
	ch, _ := utf8.DecodeRune(r.input[r.pos:])
	return ch
}

func (r *PlainReader) advance() {
	if r.isEOF() {
		return
	}
	_, w := utf8.DecodeRune(r.input[r.pos:])
	r.pos += w
}

func (r *PlainReader) skipWhitespace() {
	for !r.isEOF() && unicode.IsSpace(r.current()) {
		r.advance()
	}
}

// scanOne scans the next whitespace-delimited token and appends one or
// more Events to pending. Returns false at end of input.
func (r *PlainReader) scanOne() bool {
	r.skipWhitespace()
	if r.isEOF() {
		return false
	}

	start := r.pos
	for !r.isEOF() && !unicode.IsSpace(r.current()) {
		r.advance()
	}
	tok := string(r.input[start:r.pos])

	if kind, ok := r.table.Lookup(tok); ok {
		r.pending = append(r.pending, Event{Punct: &parser.Punct{Kind: kind}})
		return true
	}

	trailing := stripTrailingPunct(tok, r.table)
	if trailing.word != "" {
		r.pending = append(r.pending, Event{Unit: &parser.Unit{Name: trailing.word}})
	}
	for _, kind := range trailing.kinds {
		r.pending = append(r.pending, Event{Punct: &parser.Punct{Kind: kind}})
	}
	return true
}

type strippedToken struct {
	word  string
	kinds []parser.PunctKind
}

// stripTrailingPunct peels recognized single-character punctuation off
// the end of tok (e.g. "dog." -> "dog" + FullStop).
func stripTrailingPunct(tok string, table punct.Table) strippedToken {
	var kinds []parser.PunctKind
	for len(tok) > 0 {
		last := tok[len(tok)-1:]
		kind, ok := table.Lookup(last)
		if !ok {
			break
		}
		kinds = append([]parser.PunctKind{kind}, kinds...)
		tok = tok[:len(tok)-1]
	}
	return strippedToken{word: tok, kinds: kinds}
}
