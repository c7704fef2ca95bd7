package ttree

import (
	"fmt"

	"github.com/yanelox/vanginneken/geom"
)

// New validates nodes and edges and returns a deep copy assembled into
// an immutable *Tree, with Children lists always rebuilt from edges
// rather than trusted from the caller's input.
//
// Validation, in order:
//  1. nodes must be non-empty (ErrEmptyTree).
//  2. node IDs must be unique (ErrDuplicateNodeID).
//  3. exactly one node of Kind Buffer must exist (ErrNoRootBuffer / ErrMultipleRootBuffers).
//  4. every edge's Parent/Child must reference a known node id (ErrUnknownNodeID).
//  5. every edge's polyline must be rectilinear (geom.ErrNonRectilinear)
//     and its endpoints must coincide with its parent/child coordinates
//     (ErrEndpointMismatch).
func New(nodes []Node, edges []Edge) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyTree
	}

	byID := make(map[int]int, len(nodes)) // node ID -> index in out.Nodes
	out := &Tree{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
	}
	for i, n := range nodes {
		if _, dup := byID[n.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNodeID, n.ID)
		}
		byID[n.ID] = i
		cp := n
		cp.Children = nil // rebuilt below from edges
		out.Nodes[i] = cp
	}

	rootIdx := -1
	for i, n := range out.Nodes {
		if n.Kind != Buffer {
			continue
		}
		if rootIdx != -1 {
			return nil, fmt.Errorf("%w: %d and %d", ErrMultipleRootBuffers, out.Nodes[rootIdx].ID, n.ID)
		}
		rootIdx = i
	}
	if rootIdx == -1 {
		return nil, ErrNoRootBuffer
	}
	out.Root = out.Nodes[rootIdx].ID

	for i, e := range edges {
		pIdx, ok := byID[e.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d parent %d", ErrUnknownNodeID, e.ID, e.Parent)
		}
		cIdx, ok := byID[e.Child]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d child %d", ErrUnknownNodeID, e.ID, e.Child)
		}

		segs := make([]geom.Point, len(e.Segments))
		copy(segs, e.Segments)
		if err := geom.ValidateRectilinear(segs); err != nil {
			return nil, fmt.Errorf("edge %d: %w", e.ID, err)
		}
		if len(segs) < 2 {
			return nil, fmt.Errorf("%w: edge %d has fewer than two points", geom.ErrNonRectilinear, e.ID)
		}
		if segs[0] != out.Nodes[pIdx].Point {
			return nil, fmt.Errorf("%w: edge %d start vs parent %d", ErrEndpointMismatch, e.ID, e.Parent)
		}
		if segs[len(segs)-1] != out.Nodes[cIdx].Point {
			return nil, fmt.Errorf("%w: edge %d end vs child %d", ErrEndpointMismatch, e.ID, e.Child)
		}

		out.Edges[i] = Edge{ID: e.ID, Parent: e.Parent, Child: e.Child, Segments: segs}
		out.Nodes[pIdx].Children = append(out.Nodes[pIdx].Children, e.Child)
	}

	return out, nil
}

// NodeByID returns the node with the given ID and true, or the zero
// Node and false if absent.
func (t *Tree) NodeByID(id int) (Node, bool) {
	for _, n := range t.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// EdgeBetween returns the edge oriented parent → child between the two
// given node IDs, or false if none exists.
func (t *Tree) EdgeBetween(parent, child int) (Edge, bool) {
	for _, e := range t.Edges {
		if e.Parent == parent && e.Child == child {
			return e, true
		}
	}
	return Edge{}, false
}

// MaxNodeID returns the largest node ID present in t.
func (t *Tree) MaxNodeID() int {
	max := 0
	for _, n := range t.Nodes {
		if n.ID > max {
			max = n.ID
		}
	}
	return max
}

// MaxEdgeID returns the largest edge ID present in t.
func (t *Tree) MaxEdgeID() int {
	max := 0
	for _, e := range t.Edges {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}

// IDGen hands out fresh, monotonically increasing node and edge IDs,
// seeded just past the largest ID present in the input tree (spec.md §3
// "Identifier generation").
type IDGen struct {
	nextNode int
	nextEdge int
}

// NewIDGen seeds an IDGen from t's current maximum node/edge IDs.
func NewIDGen(t *Tree) *IDGen {
	return &IDGen{nextNode: t.MaxNodeID() + 1, nextEdge: t.MaxEdgeID() + 1}
}

// NodeID returns a fresh node ID and advances the counter.
func (g *IDGen) NodeID() int {
	id := g.nextNode
	g.nextNode++
	return id
}

// EdgeID returns a fresh edge ID and advances the counter.
func (g *IDGen) EdgeID() int {
	id := g.nextEdge
	g.nextEdge++
	return id
}
