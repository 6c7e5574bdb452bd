// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package labels implements the per-word label table: one set of labels per side, storing labels in their
// flipped form so that "does the adjacent word carry a label matching L
// from the other side" is a plain equality lookup.
package labels
