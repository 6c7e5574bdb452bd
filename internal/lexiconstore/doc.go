// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package lexiconstore persists an internal/lexicon.Lexicon to a sqlite
// database between runs.
//
// The schema here is small enough to hand-write rather than generate with
// sqlc — there is no Go toolchain available in this environment to run
// `sqlc generate`, so the query layer is plain database/sql statements
// against the modernc.org/sqlite driver.
package lexiconstore
