// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package progress reports utterances/words processed per second while
// cmd/cclparse runs a learn or parse pass, for a "-R progress"-style
// flag and periodic timing output.
package progress
