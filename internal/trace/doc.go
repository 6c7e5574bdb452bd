// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package trace defines the narrow Sink interface internal/parser's
// Session reports structural events through, and a slog-backed sink that
// filters events against a config.TraceBit mask.
package trace
