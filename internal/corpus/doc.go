// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package corpus reads token streams from plain text, Penn-Treebank
// style, and XML corpora and turns them into the parser package's Unit
// and Punct events.
package corpus
