package ioadapter

import (
	"encoding/json"
	"fmt"

	"github.com/yanelox/vanginneken/geom"
	"github.com/yanelox/vanginneken/ginneken"
	"github.com/yanelox/vanginneken/ttree"
)

// ParseTechnology parses a technology document into a geom.Technology.
func ParseTechnology(data []byte) (geom.Technology, error) {
	var doc technologyDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return geom.Technology{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if len(doc.Module) == 0 || len(doc.Module[0].Input) == 0 {
		return geom.Technology{}, fmt.Errorf("%w: missing module[0].input[0]", ErrMalformedDocument)
	}

	in := doc.Module[0].Input[0]
	return geom.Technology{
		DIntr: in.IntrinsicDelay,
		CBuf:  in.C,
		RBuf:  in.R,
		UnitR: doc.Technology.UnitWireResistance,
		UnitC: doc.Technology.UnitWireCapacitance,
	}, nil
}

// ParseTraceTree parses a trace-tree document into a *ttree.Tree,
// validating it via ttree.New.
func ParseTraceTree(data []byte) (*ttree.Tree, error) {
	var doc TraceTreeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	nodes := make([]ttree.Node, 0, len(doc.Node))
	for _, nd := range doc.Node {
		kind, err := ttree.ParseKind(nd.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", ErrMalformedDocument, nd.ID, err)
		}

		n := ttree.Node{ID: nd.ID, Point: geom.Point{X: nd.X, Y: nd.Y}, Kind: kind, Name: nd.Name}
		if kind == ttree.Terminal {
			if nd.Capacitance == nil || nd.RAT == nil {
				return nil, fmt.Errorf("%w: terminal node %d missing capacitance/rat", ErrMalformedDocument, nd.ID)
			}
			n.Sink = ttree.TerminalLoad{C: *nd.Capacitance, Q: *nd.RAT}
		}
		nodes = append(nodes, n)
	}

	edges := make([]ttree.Edge, 0, len(doc.Edge))
	for _, ed := range doc.Edge {
		if len(ed.Vertices) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d vertices, want 2", ErrMalformedDocument, ed.ID, len(ed.Vertices))
		}

		segs := make([]geom.Point, len(ed.Segments))
		for i, xy := range ed.Segments {
			if len(xy) != 2 {
				return nil, fmt.Errorf("%w: edge %d segment %d is not an [x, y] pair", ErrMalformedDocument, ed.ID, i)
			}
			segs[i] = geom.Point{X: xy[0], Y: xy[1]}
		}

		edges = append(edges, ttree.Edge{ID: ed.ID, Parent: ed.Vertices[0], Child: ed.Vertices[1], Segments: segs})
	}

	tree, err := ttree.New(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return tree, nil
}

// DumpResult renders a *ginneken.Result as an indented JSON document
// (spec.md §6's output shape), applying opts (see WithDebug).
func DumpResult(res *ginneken.Result, opts ...Option) ([]byte, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	doc := OutputDoc{
		Node: make([]nodeDoc, 0, len(res.Nodes)),
		Edge: make([]edgeDoc, 0, len(res.Edges)),
	}

	for _, n := range res.Nodes {
		nd := nodeDoc{ID: n.ID, X: n.Point.X, Y: n.Point.Y, Type: n.Kind.String(), Name: n.Name}
		if n.Kind == ttree.Terminal {
			c, q := n.Sink.C, n.Sink.Q
			nd.Capacitance = &c
			nd.RAT = &q
		}
		if o.debug {
			children := append([]int(nil), n.Children...)
			nd.Children = &children
		}
		doc.Node = append(doc.Node, nd)
	}

	for _, e := range res.Edges {
		segs := make([][]int, len(e.Segments))
		for i, p := range e.Segments {
			segs[i] = []int{p.X, p.Y}
		}
		doc.Edge = append(doc.Edge, edgeDoc{ID: e.ID, Vertices: []int{e.Parent, e.Child}, Segments: segs})
	}

	if o.debug {
		c, q := res.C, res.Q
		doc.C = &c
		doc.Q = &q
	}

	return json.MarshalIndent(doc, "", "    ")
}
