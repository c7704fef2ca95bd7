// Package ttree defines the immutable input trace tree: a rooted,
// rectilinear Steiner tree whose root is a single driving buffer and
// whose leaves are sinks with known capacitance and required arrival
// time (RAT).
//
// Node.Kind discriminates terminal sinks ('t'), Steiner junctions ('s'),
// and the single root buffer ('b'); only terminals carry a TerminalLoad.
// Edge orientation is semantic (parent → child) and every edge's
// polyline must be rectilinear: consecutive points share a row or a
// column, per geom.ValidateRectilinear.
//
// New validates and deep-copies its input once; the resulting *Tree is
// never mutated afterwards (spec.md §3 "Lifecycle"). IDGen hands out
// fresh node/edge IDs for buffers and buffer-incident edges introduced
// during buffer insertion, continuing the input tree's numbering.
package ttree
