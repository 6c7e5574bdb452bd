// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package brackets maintains the bracket layer
// in lock-step with a ccl.Set: the B1/B2 families per node, the list of
// brackets currently covering LAST, and the maximal brackets that do not
// reach LAST.
package brackets
