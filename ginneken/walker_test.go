package ginneken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanelox/vanginneken/geom"
	"github.com/yanelox/vanginneken/ginneken"
	"github.com/yanelox/vanginneken/ttree"
)

// These exercise Run over a corner (two-segment) edge, which is the
// only thing walker.go adds beyond what driver_test.go's straight-wire
// scenarios already cover: segmentDirection switching mid-edge and the
// boundary point between segments being walked exactly once.
func TestRunCorneredEdge(t *testing.T) {
	nodes := []ttree.Node{
		{ID: 0, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Buffer},
		{ID: 1, Point: geom.Point{X: 3, Y: 2}, Kind: ttree.Terminal, Sink: ttree.TerminalLoad{C: 1, Q: 2}},
	}
	edges := []ttree.Edge{
		{ID: 0, Parent: 0, Child: 1, Segments: []geom.Point{
			{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2},
		}},
	}
	tree, err := ttree.New(nodes, edges)
	require.NoError(t, err)

	res, err := ginneken.Run(tech(), tree)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(res.Nodes), 2)
	total := 0.0
	for _, e := range res.Edges {
		total += e.Length()
	}
	assert.InDelta(t, 5.0, total, 1e-9) // 2 (vertical leg) + 3 (horizontal leg)
}
