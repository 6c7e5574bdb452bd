// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ccl

import "github.com/corvidlabs/ccl/cerrs"

const (
	errTooManyAdjacent = cerrs.ErrTooManyAdjacent
	errUnusedAdjacency = cerrs.ErrUnusedAdjacency
	errEquality        = cerrs.ErrEquality
	errForcing         = cerrs.ErrForcing
	errNotCoveredToLast = cerrs.ErrNotCoveredToLast
	errResolution      = cerrs.ErrResolution
	errClosedSet       = cerrs.ErrClosedSet
	errUnresolvedRV    = cerrs.ErrUnresolvedRV
	errUnknownPosition = cerrs.ErrUnknownPosition
)
