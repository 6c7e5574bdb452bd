// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package punct

import "github.com/corvidlabs/ccl/internal/parser"

// Table maps a corpus's surface punctuation spellings to parser.PunctKind
// values.
type Table map[string]parser.PunctKind

// Penn is the Penn-Treebank-style punctuation table.
var Penn = Table{
	".":  parser.FullStop,
	"?":  parser.Question,
	"!":  parser.Exclamation,
	";":  parser.SemiColon,
	"--": parser.Dash,
	":":  parser.Colon,
	",":  parser.Comma,
	"...": parser.Ellipsis,
	"(":  parser.LeftParen,
	")":  parser.RightParen,
	"``": parser.LeftDoubleQuote,
	"''": parser.RightDoubleQuote,
	"`":  parser.LeftSingleQuote,
	"'":  parser.RightSingleQuote,
	"-":  parser.Hyphen,
	"$":  parser.Currency,
}

// Plain is a minimal punctuation table for raw-text corpora.
var Plain = Table{
	".": parser.FullStop,
	"?": parser.Question,
	"!": parser.Exclamation,
	";": parser.SemiColon,
	",": parser.Comma,
	":": parser.Colon,
	"-": parser.Hyphen,
}

// Lookup returns the PunctKind for tok under t, and whether tok is
// punctuation at all.
func (t Table) Lookup(tok string) (parser.PunctKind, bool) {
	k, ok := t[tok]
	return k, ok
}
