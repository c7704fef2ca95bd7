// SPDX-License-Identifier: MIT
// Package: vanginneken/ttree
//
// errors.go — sentinel errors for the ttree package: sentinels only,
// branch with errors.Is, context attached with %w at the call site.

package ttree

import "errors"

var (
	// ErrEmptyTree indicates a tree with no nodes was supplied.
	ErrEmptyTree = errors.New("ttree: tree has no nodes")

	// ErrDuplicateNodeID indicates two input nodes share an ID.
	ErrDuplicateNodeID = errors.New("ttree: duplicate node id")

	// ErrUnknownNodeID indicates an edge references a node id absent from the tree.
	ErrUnknownNodeID = errors.New("ttree: edge references unknown node id")

	// ErrNoRootBuffer indicates no node of Kind Buffer was found.
	ErrNoRootBuffer = errors.New("ttree: no root buffer node")

	// ErrMultipleRootBuffers indicates more than one node of Kind Buffer was found.
	ErrMultipleRootBuffers = errors.New("ttree: more than one root buffer node")

	// ErrEndpointMismatch indicates an edge's polyline endpoints do not
	// coincide with its parent/child node coordinates.
	ErrEndpointMismatch = errors.New("ttree: edge polyline endpoint does not match node coordinates")

	// ErrUnknownKind indicates an unrecognized node kind string was parsed.
	ErrUnknownKind = errors.New("ttree: unknown node kind")
)
