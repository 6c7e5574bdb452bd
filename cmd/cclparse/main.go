// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Command cclparse drives an unsupervised CCL learn/parse pass over a
// corpus, persists the learned lexicon, dumps it, and scores parses
// against a Penn-Treebank gold standard.
package main

import (
	"log/slog"
	"os"

	"github.com/maloquacious/semver"

	"github.com/corvidlabs/ccl/internal/cliapp"
)

var version = semver.Version{Major: 0, Minor: 1, Patch: 0, Build: semver.Commit()}

func main() {
	root := cliapp.NewRootCommand("cclparse", version)
	if err := root.Execute(); err != nil {
		slog.Error("cclparse", "error", err)
		os.Exit(1)
	}
}
