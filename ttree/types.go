package ttree

import "github.com/yanelox/vanginneken/geom"

// Kind discriminates the three node roles spec.md §3 defines.
type Kind int

const (
	// Terminal is a sink leaf carrying a TerminalLoad.
	Terminal Kind = iota
	// Steiner is a zero-size rectilinear junction.
	Steiner
	// Buffer is either the driving root or a buffer inserted by the algorithm.
	Buffer
)

// String renders the kind using the wire-format tags from spec.md §6 ("t"/"s"/"b").
func (k Kind) String() string {
	switch k {
	case Terminal:
		return "t"
	case Steiner:
		return "s"
	case Buffer:
		return "b"
	default:
		return "?"
	}
}

// ParseKind parses the wire-format tag into a Kind, failing with ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "t":
		return Terminal, nil
	case "s":
		return Steiner, nil
	case "b":
		return Buffer, nil
	default:
		return 0, ErrUnknownKind
	}
}

// TerminalLoad holds the sink capacitance and required arrival time
// carried by a Terminal node. Zero-valued for non-terminal kinds.
type TerminalLoad struct {
	C float64 // sink capacitance
	Q float64 // required arrival time
}

// Node is a single vertex of the trace tree.
type Node struct {
	ID       int
	Point    geom.Point
	Kind     Kind
	Name     string
	Children []int // populated from Edges by New; empty for terminals
	Sink     TerminalLoad
}

// Edge is an oriented (parent → child) wire between two nodes, carrying
// the ordered rectilinear polyline that routes it.
type Edge struct {
	ID       int
	Parent   int
	Child    int
	Segments []geom.Point
}

// Length returns the rectilinear length of e's polyline.
func (e Edge) Length() float64 {
	return geom.SegmentLength(e.Segments)
}

// Reversed returns a copy of e with its polyline reversed and its
// Parent/Child vertices swapped. Used wherever the algorithm needs to
// walk or re-root an edge without mutating the tree it came from
// (spec.md §9's redesign flag: "this removes the subtle invariant that
// each edge is walked exactly once").
func (e Edge) Reversed() Edge {
	segs := make([]geom.Point, len(e.Segments))
	for i, p := range e.Segments {
		segs[len(segs)-1-i] = p
	}
	return Edge{ID: e.ID, Parent: e.Child, Child: e.Parent, Segments: segs}
}

// Tree is the immutable input trace tree.
type Tree struct {
	Nodes []Node
	Edges []Edge
	Root  int // ID of the unique Buffer-kind node
}
