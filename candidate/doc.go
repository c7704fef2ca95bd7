// Package candidate implements the Van Ginneken dynamic-program state: a
// partial output tree built bottom-up ("Candidate"), the dominance
// relation between two Candidates, and the Pareto Frontier that keeps
// only the non-dominated ones.
//
// A Candidate tracks everything already committed below its current
// "top" — the downstream capacitance C and the bottleneck required
// arrival time Q seen so far — plus, while being extended one lattice
// unit at a time by the edge walker, an open TopEdge whose far end is
// not yet attached to a committed node.
//
// Candidate A dominates Candidate B iff A.C <= B.C && A.Q >= B.Q: A can
// only be better or equal on both axes, so B can never win from here on
// and is discarded (spec.md §4.2). Frontier.Insert applies this rule
// with a non-strict tie-break rule: on an exact tie, the candidate
// already in the frontier survives and the newcomer is dropped (see
// DESIGN.md's Open Question #1).
package candidate
