// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package evaluator scores a parsed constituent tree against a gold
// bracketing: bracket-bag precision/recall/F1 plus a crossing-brackets
// count, following the same accumulative precision-and-recall
// arithmetic as a classic PARSEVAL-style bracket scorer.
package evaluator
