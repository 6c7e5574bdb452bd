// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package corpus

import (
	"encoding/xml"
	"io"

	"github.com/corvidlabs/ccl/internal/parser"
	"github.com/corvidlabs/ccl/internal/punct"
)

// xmlSentence is the minimal TEI-ish shape this reader understands:
//
//	<corpus>
//	  <s><w>the</w><w>dog</w><c>.</c></s>
//	  ...
//	</corpus>
//
// <w> elements are words, <c> elements are punctuation looked up in the
// reader's punct.Table.
type xmlSentence struct {
	XMLName xml.Name   `xml:"s"`
	Tokens  []xmlToken `xml:",any"`
}

type xmlToken struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// XMLReader reads the corpus's <s>/<w>/<c> element stream with
// encoding/xml's streaming decoder, one <s> at a time so large corpora
// don't load fully into memory.
type XMLReader struct {
	dec     *xml.Decoder
	table   punct.Table
	pending []Event
}

// NewXMLReader returns a reader over r.
func NewXMLReader(r io.Reader) *XMLReader {
	return &XMLReader{dec: xml.NewDecoder(r), table: punct.Penn}
}

func (r *XMLReader) Next() (Event, error) {
	for len(r.pending) == 0 {
		if !r.scanSentence() {
			return Event{}, io.EOF
		}
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, nil
}

func (r *XMLReader) scanSentence() bool {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return false
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "s" {
			continue
		}
		var sent xmlSentence
		if err := r.dec.DecodeElement(&sent, &start); err != nil {
			return false
		}
		for _, t := range sent.Tokens {
			switch t.XMLName.Local {
			case "w":
				r.pending = append(r.pending, Event{Unit: &parser.Unit{Name: t.Text}})
			case "c":
				if kind, ok := r.table.Lookup(t.Text); ok {
					r.pending = append(r.pending, Event{Punct: &parser.Punct{Kind: kind}})
				}
			}
		}
		r.pending = append(r.pending, Event{Punct: &parser.Punct{Kind: parser.EoUtterance}})
		return true
	}
}
