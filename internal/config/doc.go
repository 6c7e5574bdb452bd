// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config loads the parser's recognized options from a simple
// "NAME VALUE" configuration file (see, "Configuration file
// syntax"). It handles statistics table sizing, punctuation and tag
// handling flags, scorer policy toggles, and the printing/trace bit
// masks. Configuration is loaded with sensible defaults when no file
// is present.
package config
