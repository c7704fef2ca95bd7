package ioadapter

import "errors"

var (
	// ErrMalformedDocument indicates a technology or trace-tree document
	// failed to parse or violated its required shape (spec.md §7.1). The
	// missing/duplicate-root-buffer case is surfaced through this
	// sentinel too, wrapping ttree's own ErrNoRootBuffer/
	// ErrMultipleRootBuffers so callers can match on either.
	ErrMalformedDocument = errors.New("ioadapter: malformed document")
)
