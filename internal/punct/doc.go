// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package punct maps corpus-specific punctuation spellings to
// parser.PunctKind values.
package punct
