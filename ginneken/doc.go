// Package ginneken implements the bottom-up Van Ginneken buffer
// insertion dynamic program: the Edge Walker that extends a child's
// Pareto frontier up a wire one lattice unit at a time, speculatively
// splicing a buffer at every integer point, and the top-level Driver
// that recurses over the trace tree, merges sibling frontiers, and
// finally picks the maximum-Q candidate at the root.
//
// The traversal is post-order and iterative (an explicit stack, not Go
// call-stack recursion) per spec.md §9's redesign note that deep,
// narrow trees should not depend on the runtime recursion limit.
//
// Run itself takes no configuration beyond the technology and the tree:
// the one knob spec.md's Design Notes calls out (the debug dump) is an
// output-formatting concern, not a solver concern, so it lives on
// ioadapter's functional Options instead, the same way other packages
// in this module keep output formatting out of their core loops.
package ginneken
