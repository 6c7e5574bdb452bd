// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package lexicon implements the interning map from lowercased surface
// form to a lexical entry: an occurrence count, plus, per side, an
// LRU-capped cache of statistics rows (one per adjacency position) and a
// label table.
package lexicon
