package candidate

import (
	"fmt"

	"github.com/yanelox/vanginneken/geom"
	"github.com/yanelox/vanginneken/ttree"
)

// TopEdge is the open, in-progress wire piece between a Candidate's last
// committed node and the walker's current point. Its far end is
// provisional until Install-Top-Node or Try-Insert-Buffer caps it.
type TopEdge struct {
	ID       int
	Segments []geom.Point // Segments[0] is the last committed node's coordinate
}

// Candidate is a partial output tree rooted at a not-yet-emitted "top"
// node currently being built upward (spec.md §3).
type Candidate struct {
	Nodes []ttree.Node
	Edges []ttree.Edge
	C     float64
	Q     float64
	Top   *TopEdge
}

// NewTerminal returns the singleton starting Candidate for a terminal
// sink: C/Q seeded from the sink's load, no committed edges, no open
// top edge (spec.md §4.8 step 2, "At a terminal t").
func NewTerminal(n ttree.Node) *Candidate {
	return &Candidate{
		Nodes: []ttree.Node{n},
		C:     n.Sink.C,
		Q:     n.Sink.Q,
	}
}

// clone returns a deep copy of c; committed Nodes/Edges are copied into
// fresh backing arrays so a buffer-insert branch can never alias its
// non-buffered sibling's storage (spec.md §5).
func (c *Candidate) clone() *Candidate {
	cp := &Candidate{
		Nodes: append([]ttree.Node(nil), c.Nodes...),
		Edges: append([]ttree.Edge(nil), c.Edges...),
		C:     c.C,
		Q:     c.Q,
	}
	if c.Top != nil {
		cp.Top = &TopEdge{ID: c.Top.ID, Segments: append([]geom.Point(nil), c.Top.Segments...)}
	}
	return cp
}

// topNode returns the last committed node — the current open end when
// Top is nil.
func (c *Candidate) topNode() ttree.Node {
	return c.Nodes[len(c.Nodes)-1]
}

// Dominates reports whether a dominates b under spec.md §4.2's
// non-strict rule: a.C <= b.C and a.Q >= b.Q. An exact tie counts as
// domination (both candidates dominate each other); callers rely on
// this to make ties resolve deterministically in Frontier.Insert.
func Dominates(a, b *Candidate) bool {
	return a.C <= b.C && a.Q >= b.Q
}

// ExtendTopEdge advances c's open end to the rectilinear point to,
// which must be one axis-step from the current open end (spec.md §4.3).
// It mutates c in place; callers that need to keep c's previous value
// must clone first.
func ExtendTopEdge(tech geom.Technology, idgen *ttree.IDGen, c *Candidate, to geom.Point) error {
	from := c.topNode().Point
	if c.Top != nil {
		from = c.Top.Segments[len(c.Top.Segments)-1]
	}
	if dx, dy := to.X-from.X, to.Y-from.Y; dx*dx+dy*dy > 1 {
		return fmt.Errorf("%w: %v -> %v is more than one axis-step", ErrInvariantViolation, from, to)
	}

	if c.Top == nil {
		top := c.topNode()
		if top.Point.X != to.X && top.Point.Y != to.Y {
			return fmt.Errorf("%w: new top edge from %v to %v is not rectilinear", ErrInvariantViolation, top.Point, to)
		}

		id := idgen.EdgeID()
		c.Top = &TopEdge{ID: id, Segments: []geom.Point{top.Point, to}}
		cLoad := c.C
		length := geom.SegmentLength(c.Top.Segments)
		c.C += tech.WireCapacitance(length)
		c.Q -= tech.WireDelay(length, cLoad)
		return nil
	}

	segs := c.Top.Segments
	x1, y1 := segs[len(segs)-2].X, segs[len(segs)-2].Y
	x2, y2 := segs[len(segs)-1].X, segs[len(segs)-1].Y
	x, y := to.X, to.Y

	oldLen := geom.SegmentLength(segs)
	switch {
	case (x1 == x2 && x2 == x) || (y1 == y2 && y2 == y):
		// Collinear extension: overwrite the open endpoint.
		segs[len(segs)-1] = to
	case (x1 == x2 && y2 == y) || (y1 == y2 && x2 == x):
		// Turns a corner: append a new polyline vertex.
		segs = append(segs, to)
	default:
		return fmt.Errorf("%w: %v -> %v does not continue or corner the open edge", ErrInvariantViolation, segs[len(segs)-1], to)
	}
	c.Top.Segments = segs

	newLen := geom.SegmentLength(segs)
	cLoad := c.C - tech.WireCapacitance(oldLen)
	c.C += tech.WireCapacitance(newLen) - tech.WireCapacitance(oldLen)
	c.Q += tech.WireDelay(oldLen, cLoad) - tech.WireDelay(newLen, cLoad)
	return nil
}

// reversePoints returns a new slice with p's points in reverse order.
func reversePoints(p []geom.Point) []geom.Point {
	out := make([]geom.Point, len(p))
	for i, v := range p {
		out[len(out)-1-i] = v
	}
	return out
}

// TryInsertBuffer produces a new Candidate representing "place a buffer
// at the walker's current point between the downstream subtree captured
// in c and whatever lies above" (spec.md §4.4). c must have an open
// TopEdge; at must equal its current far end.
func TryInsertBuffer(tech geom.Technology, idgen *ttree.IDGen, c *Candidate, at geom.Point) (*Candidate, error) {
	if c.Top == nil {
		return nil, fmt.Errorf("%w: try-insert-buffer requires an open top edge", ErrInvariantViolation)
	}

	res := c.clone()
	oldTop := c.topNode()

	bufNode := ttree.Node{
		ID:       idgen.NodeID(),
		Point:    at,
		Kind:     ttree.Buffer,
		Name:     "buf1x",
		Children: []int{oldTop.ID},
	}
	newEdge := ttree.Edge{
		ID:       res.Top.ID,
		Parent:   bufNode.ID,
		Child:    oldTop.ID,
		Segments: reversePoints(res.Top.Segments),
	}

	res.Nodes = append(res.Nodes, bufNode)
	res.Edges = append(res.Edges, newEdge)

	loadBelowBuffer := c.C // load seen at the buffer, including the just-committed wire
	res.Q = c.Q - tech.BufferDelay(loadBelowBuffer)
	res.C = tech.CBuf
	res.Top = nil

	if err := ExtendTopEdge(tech, idgen, res, at); err != nil {
		return nil, err
	}
	return res, nil
}

// InstallTopNode caps off c's open top edge with a committed node from
// the input tree (a Steiner junction, or — at the root — a Buffer),
// per spec.md §4.6.
func InstallTopNode(tech geom.Technology, c *Candidate, node ttree.Node) (*Candidate, error) {
	if c.Top == nil {
		return nil, fmt.Errorf("%w: install-top-node requires an open top edge", ErrInvariantViolation)
	}

	res := c.clone()
	oldTop := c.topNode()

	newNode := node
	newNode.Children = []int{oldTop.ID}
	newEdge := ttree.Edge{
		ID:       res.Top.ID,
		Parent:   node.ID,
		Child:    oldTop.ID,
		Segments: reversePoints(res.Top.Segments),
	}

	res.Nodes = append(res.Nodes, newNode)
	res.Edges = append(res.Edges, newEdge)
	res.Top = nil

	if node.Kind == ttree.Buffer {
		res.Q = c.Q - tech.BufferDelay(c.C)
		res.C = tech.CBuf
	}
	return res, nil
}

// MergeCandidates combines two Candidates already extended to, and
// capped by InstallTopNode at, the same internal tree node into one
// joint Candidate: capacitances add in parallel, Q takes the bottleneck
// minimum, and the shared top node's children lists are unioned
// (spec.md §4.7). Both inputs must have a nil TopEdge.
func MergeCandidates(a, b *Candidate) (*Candidate, error) {
	if a.Top != nil || b.Top != nil {
		return nil, fmt.Errorf("%w: merge requires both candidates to have been capped by install-top-node", ErrInvariantViolation)
	}

	topA := a.topNode()
	topB := b.topNode()

	newTop := topA
	newTop.Children = append(append([]int(nil), topA.Children...), topB.Children...)

	merged := &Candidate{
		C: a.C + b.C,
		Q: minQ(a.Q, b.Q),
	}
	merged.Nodes = make([]ttree.Node, 0, len(a.Nodes)+len(b.Nodes))
	merged.Nodes = append(merged.Nodes, a.Nodes[:len(a.Nodes)-1]...)
	merged.Nodes = append(merged.Nodes, b.Nodes[:len(b.Nodes)-1]...)
	merged.Nodes = append(merged.Nodes, newTop)

	merged.Edges = make([]ttree.Edge, 0, len(a.Edges)+len(b.Edges))
	merged.Edges = append(merged.Edges, a.Edges...)
	merged.Edges = append(merged.Edges, b.Edges...)

	return merged, nil
}

func minQ(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
