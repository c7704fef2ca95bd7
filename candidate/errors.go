// SPDX-License-Identifier: MIT
// Package: vanginneken/candidate
//
// errors.go — sentinel errors for the candidate package.

package candidate

import "errors"

// ErrInvariantViolation indicates the caller broke one of this package's
// structural contracts: extending a top edge to a non-adjacent point,
// inserting a buffer or installing a node without an open top edge, or
// merging candidates that still have one. These are programmer errors
// within the core (spec.md §7 category 2), not malformed input, and the
// correct handling is to abort the net.
var ErrInvariantViolation = errors.New("candidate: internal invariant violation")
