// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package parser drives the per-token parse loop: inserting a new word, enumerating candidate links on both sides,
// scoring them against the lexicon, adding links until quiescence, and
// enqueueing the learning events that the utterance's end will apply.
package parser
