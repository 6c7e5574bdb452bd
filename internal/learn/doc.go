// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package learn defers statistics updates until an utterance terminates,
// then applies them atomically.
package learn
