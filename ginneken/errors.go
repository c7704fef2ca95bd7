// SPDX-License-Identifier: MIT
// Package: vanginneken/ginneken
//
// errors.go — sentinel errors for the ginneken package.

package ginneken

import "errors"

var (
	// ErrMissingEdge indicates no edge was found between a known parent
	// and child node pair, or a node id reached during traversal was not
	// found in the tree — an internal invariant violation (spec.md §7.2).
	ErrMissingEdge = errors.New("ginneken: no edge found between parent and child")

	// ErrEmptyFrontier indicates the root frontier was empty after
	// pruning. Unreachable for any well-formed input with at least one
	// terminal (spec.md §7.3); surfaced defensively.
	ErrEmptyFrontier = errors.New("ginneken: root frontier is empty")
)
