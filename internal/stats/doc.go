// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package stats implements the per-word, per-side, per-adjacency-position
// statistics store: scalar counters for the
// Learn/Block/In/Out property families, and a bounded top-K table of label
// strengths maintained in descending order.
package stats
