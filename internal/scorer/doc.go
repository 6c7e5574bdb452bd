// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package scorer computes per-candidate link match strength from the
// statistics and label tables, selects the best adjacency match per
// side, and derives link depth and direction.
package scorer
