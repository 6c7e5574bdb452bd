// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package corpus

import (
	"io"

	"github.com/corvidlabs/ccl/internal/parser"
)

// Event is one token read from a corpus: exactly one of Unit or Punct is
// set.
type Event struct {
	Unit  *parser.Unit
	Punct *parser.Punct
}

// Reader yields corpus Events in order, returning io.EOF when exhausted.
type Reader interface {
	Next() (Event, error)
}

// Drain passes every event in r to feed, in order.
func Drain(r Reader, feed func(Event) error) error {
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := feed(ev); err != nil {
			return err
		}
	}
}
