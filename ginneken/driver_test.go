package ginneken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanelox/vanginneken/geom"
	"github.com/yanelox/vanginneken/ginneken"
	"github.com/yanelox/vanginneken/ttree"
)

func tech() geom.Technology {
	return geom.Technology{DIntr: 0, CBuf: 1, RBuf: 1, UnitR: 1, UnitC: 1}
}

func TestRunSingleWireSingleSink(t *testing.T) {
	nodes := []ttree.Node{
		{ID: 0, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Buffer},
		{ID: 1, Point: geom.Point{X: 0, Y: 1}, Kind: ttree.Terminal, Sink: ttree.TerminalLoad{C: 1, Q: 10}},
	}
	edges := []ttree.Edge{
		{ID: 0, Parent: 0, Child: 1, Segments: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}}},
	}
	tree, err := ttree.New(nodes, edges)
	require.NoError(t, err)

	res, err := ginneken.Run(tech(), tree)
	require.NoError(t, err)

	assert.InDelta(t, 6.5, res.Q, 1e-9)
	assert.InDelta(t, 1.0, res.C, 1e-9)
	// No intermediate buffer: only the root buffer and the sink.
	assert.Len(t, res.Nodes, 2)
}

func TestRunLongWireForcesBuffering(t *testing.T) {
	nodes := []ttree.Node{
		{ID: 0, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Buffer},
		{ID: 1, Point: geom.Point{X: 0, Y: 50}, Kind: ttree.Terminal, Sink: ttree.TerminalLoad{C: 1, Q: 0}},
	}
	edges := []ttree.Edge{
		{ID: 0, Parent: 0, Child: 1, Segments: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 50}}},
	}
	tree, err := ttree.New(nodes, edges)
	require.NoError(t, err)

	res, err := ginneken.Run(tech(), tree)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(res.Nodes), 3)
	bufCount := 0
	for _, n := range res.Nodes {
		if n.Kind == ttree.Buffer {
			bufCount++
		}
	}
	assert.GreaterOrEqual(t, bufCount, 2) // root buffer plus at least one inserted buffer

	noInsertQ := 0.0 - tech().WireDelay(50, 1) - tech().BufferDelay(1+tech().WireCapacitance(50))
	assert.Greater(t, res.Q, noInsertQ)
}

func TestRunTwoSymmetricSinks(t *testing.T) {
	nodes := []ttree.Node{
		{ID: 0, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Buffer},
		{ID: 1, Point: geom.Point{X: 5, Y: 0}, Kind: ttree.Terminal, Sink: ttree.TerminalLoad{C: 1, Q: 10}},
		{ID: 2, Point: geom.Point{X: -5, Y: 0}, Kind: ttree.Terminal, Sink: ttree.TerminalLoad{C: 1, Q: 10}},
	}
	edges := []ttree.Edge{
		{ID: 0, Parent: 0, Child: 1, Segments: []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}},
		{ID: 1, Parent: 0, Child: 2, Segments: []geom.Point{{X: 0, Y: 0}, {X: -5, Y: 0}}},
	}
	tree, err := ttree.New(nodes, edges)
	require.NoError(t, err)

	res, err := ginneken.Run(tech(), tree)
	require.NoError(t, err)

	// Each terminal must have a mirrored counterpart at the negated X
	// coordinate with the same Y, and (if buffers were inserted) buffer
	// nodes must come in mirrored X pairs too.
	counts := map[geom.Point]int{}
	for _, n := range res.Nodes {
		if n.Kind == ttree.Terminal || n.Kind == ttree.Buffer {
			counts[n.Point]++
		}
	}
	for p, c := range counts {
		mirror := geom.Point{X: -p.X, Y: p.Y}
		assert.Equal(t, c, counts[mirror], "point %v has no mirrored counterpart", p)
	}
}

func TestRunDeterministic(t *testing.T) {
	nodes := []ttree.Node{
		{ID: 0, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Buffer},
		{ID: 1, Point: geom.Point{X: 0, Y: 10}, Kind: ttree.Terminal, Sink: ttree.TerminalLoad{C: 1, Q: 5}},
	}
	edges := []ttree.Edge{
		{ID: 0, Parent: 0, Child: 1, Segments: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}}},
	}

	var results []*ginneken.Result
	for i := 0; i < 2; i++ {
		tree, err := ttree.New(nodes, edges)
		require.NoError(t, err)
		res, err := ginneken.Run(tech(), tree)
		require.NoError(t, err)
		results = append(results, res)
	}

	assert.Equal(t, results[0], results[1])
}

func TestRunRenumberIsCompactAndConsistent(t *testing.T) {
	nodes := []ttree.Node{
		{ID: 7, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Buffer},
		{ID: 3, Point: geom.Point{X: 0, Y: 20}, Kind: ttree.Terminal, Sink: ttree.TerminalLoad{C: 1, Q: 0}},
	}
	edges := []ttree.Edge{
		{ID: 2, Parent: 7, Child: 3, Segments: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 20}}},
	}
	tree, err := ttree.New(nodes, edges)
	require.NoError(t, err)

	res, err := ginneken.Run(tech(), tree)
	require.NoError(t, err)

	seen := make(map[int]bool, len(res.Nodes))
	for i, n := range res.Nodes {
		assert.Equal(t, i, n.ID)
		seen[n.ID] = true
	}
	for i, e := range res.Edges {
		assert.Equal(t, i, e.ID)
		assert.True(t, seen[e.Parent])
		assert.True(t, seen[e.Child])
	}
	for _, n := range res.Nodes {
		for _, childID := range n.Children {
			assert.True(t, seen[childID])
		}
	}
}

func TestRunTrivialNetNoExtraBuffer(t *testing.T) {
	nodes := []ttree.Node{
		{ID: 0, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Buffer},
		{ID: 1, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Terminal, Sink: ttree.TerminalLoad{C: 2, Q: 10}},
	}
	edges := []ttree.Edge{
		{ID: 0, Parent: 0, Child: 1, Segments: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}},
	}
	tree, err := ttree.New(nodes, edges)
	require.NoError(t, err)

	res, err := ginneken.Run(tech(), tree)
	require.NoError(t, err)

	assert.Len(t, res.Nodes, 2)
	assert.InDelta(t, 10-tech().BufferDelay(2), res.Q, 1e-9)
}
