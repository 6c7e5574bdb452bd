// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cliapp builds the cclparse command tree (parse, learn, eval,
// lexicon, version) shared by the module's root binary and cmd/cclparse,
// so more than one entrypoint can share it without duplicating the
// wiring.
package cliapp
