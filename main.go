// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Command ccl is the root entrypoint for the CCL parser; it is identical
// to cmd/cclparse, presented under the module's own name.
package main

import (
	"log/slog"
	"os"

	"github.com/maloquacious/semver"

	"github.com/corvidlabs/ccl/internal/cliapp"
)

var version = semver.Version{Major: 0, Minor: 1, Patch: 0, Build: semver.Commit()}

func main() {
	root := cliapp.NewRootCommand("ccl", version)
	if err := root.Execute(); err != nil {
		slog.Error("ccl", "error", err)
		os.Exit(1)
	}
}
