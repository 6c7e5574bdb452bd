// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

// Unit is one word-like token from the input stream. Labels are external tags carried alongside
// the word (e.g. part-of-speech or gold constituent labels); the driver
// stores them into the word's label table as-is.
type Unit struct {
	Name   string
	Labels []string
}

// PunctKind enumerates the recognized punctuation kinds.
type PunctKind int

const (
	EoUtterance PunctKind = iota
	FullStop
	Question
	Exclamation
	SemiColon
	Dash
	Colon
	Comma
	Ellipsis
	LeftParen
	RightParen
	LeftDoubleQuote
	RightDoubleQuote
	LeftSingleQuote
	RightSingleQuote
	Hyphen
	HeadlineStop
	Currency
)

// Punct is a punctuation token.
type Punct struct {
	Kind PunctKind
}

// defaultStopping is the default "stopping punctuation" set.
var defaultStopping = map[PunctKind]bool{
	FullStop:    true,
	Question:    true,
	Exclamation: true,
	SemiColon:   true,
	Dash:        true,
	Comma:       true,
}

// IsStopping reports whether kind suppresses linking across it under the
// default configuration.
func (k PunctKind) IsStopping() bool { return defaultStopping[k] }
