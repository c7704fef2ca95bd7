// Package ioadapter converts between the JSON documents the outside
// world speaks (technology files, trace-tree files, result dumps) and
// the core geom/ttree/ginneken types. Nothing in this package takes
// part in the Pareto search itself; it exists purely at the external
// boundary (spec.md §6), the way matrix's conversions.go adapts
// core.Graph to plain edge-list/matrix shapes without touching graph
// algorithms.
//
// Debug-mode output (per-node children arrays, aggregate C/Q at the
// root) is controlled by a functional Option, mirroring dijkstra's
// Options/Option pattern, rather than by a package-level flag — the
// global `debug` boolean the original tool used is exactly the pattern
// spec.md's Design Notes calls out for replacement.
package ioadapter
