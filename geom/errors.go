// SPDX-License-Identifier: MIT
// Package: vanginneken/geom
//
// errors.go — sentinel errors for the geom package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed at package level.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("%w: ...", ErrX, ...).

package geom

import "errors"

// ErrNonRectilinear indicates a polyline contains a segment whose two
// endpoints are neither row-aligned nor column-aligned.
var ErrNonRectilinear = errors.New("geom: segment is not axis-aligned")

// ErrDegenerateStep indicates a requested unit step between two points
// is not exactly one lattice unit in a single cardinal direction.
var ErrDegenerateStep = errors.New("geom: points are not one unit-step apart")
