// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package ccl implements the Common Cover Link set and its incremental addable-link iterator: an ordered sequence of nodes with outbound/inbound links of depth
// 0 or 1, maintaining path endpoints, complete-blocking positions, an
// unused-adjacency bitmap, and the minimal resolution violation, and
// enforcing the four addability predicates plus the RV restriction on
// every insertion.
package ccl
