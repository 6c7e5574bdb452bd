// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package constituent builds a tree of terminals and non-terminals from
// the final bracket forest of an utterance.
package constituent
