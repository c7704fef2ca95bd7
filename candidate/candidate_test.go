package candidate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanelox/vanginneken/candidate"
	"github.com/yanelox/vanginneken/geom"
	"github.com/yanelox/vanginneken/ttree"
)

func tech() geom.Technology {
	return geom.Technology{DIntr: 0, CBuf: 1, RBuf: 1, UnitR: 1, UnitC: 1}
}

func sinkNode() ttree.Node {
	return ttree.Node{ID: 1, Point: geom.Point{X: 0, Y: 1}, Kind: ttree.Terminal, Sink: ttree.TerminalLoad{C: 1, Q: 10}}
}

func rootNode() ttree.Node {
	return ttree.Node{ID: 0, Point: geom.Point{X: 0, Y: 0}, Kind: ttree.Buffer}
}

// idGenFrom returns an IDGen seeded past the given max IDs, via a throwaway
// tree. When maxEdge > 0 the tree also holds a node with ID maxNode+1, so
// node IDs then start past that one.
func idGenFrom(maxNode, maxEdge int) *ttree.IDGen {
	nodes := []ttree.Node{{ID: maxNode, Point: geom.Point{}, Kind: ttree.Buffer}}
	edges := []ttree.Edge{}
	if maxEdge > 0 {
		// add a second node so an edge with ID maxEdge can reference it validly
		nodes = append(nodes, ttree.Node{ID: maxNode + 1, Point: geom.Point{X: 1}, Kind: ttree.Terminal})
		edges = append(edges, ttree.Edge{ID: maxEdge, Parent: maxNode, Child: maxNode + 1,
			Segments: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}})
	}
	tr, err := ttree.New(nodes, edges)
	if err != nil {
		panic(err)
	}
	return ttree.NewIDGen(tr)
}

func TestExtendTopEdgeSingleWire(t *testing.T) {
	c := candidate.NewTerminal(sinkNode())
	idgen := idGenFrom(1, 0)

	require.NoError(t, candidate.ExtendTopEdge(tech(), idgen, c, geom.Point{X: 0, Y: 0}))
	require.NotNil(t, c.Top)
	assert.InDelta(t, 2.0, c.C, 1e-9) // 1 (sink) + 1 (wire length 1)
	assert.InDelta(t, 8.5, c.Q, 1e-9) // 10 - (0.5*1*1*1 + 1*1*1)
}

func TestExtendTopEdgeRejectsNonAdjacent(t *testing.T) {
	c := candidate.NewTerminal(sinkNode())
	idgen := idGenFrom(1, 0)
	err := candidate.ExtendTopEdge(tech(), idgen, c, geom.Point{X: 5, Y: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, candidate.ErrInvariantViolation))
}

func TestTryInsertBufferRequiresTopEdge(t *testing.T) {
	c := candidate.NewTerminal(sinkNode())
	idgen := idGenFrom(1, 0)
	_, err := candidate.TryInsertBuffer(tech(), idgen, c, geom.Point{X: 0, Y: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, candidate.ErrInvariantViolation))
}

func TestTryInsertBufferInsertsNode(t *testing.T) {
	c := candidate.NewTerminal(sinkNode())
	idgen := idGenFrom(1, 0)
	require.NoError(t, candidate.ExtendTopEdge(tech(), idgen, c, geom.Point{X: 0, Y: 0}))

	buffered, err := candidate.TryInsertBuffer(tech(), idgen, c, geom.Point{X: 0, Y: 0})
	require.NoError(t, err)
	require.Len(t, buffered.Nodes, 2)
	assert.Equal(t, ttree.Buffer, buffered.Nodes[1].Kind)
	assert.InDelta(t, 1.0, buffered.C, 1e-9) // C_buf
}

func TestInstallTopNodeBuffer(t *testing.T) {
	c := candidate.NewTerminal(sinkNode())
	idgen := idGenFrom(1, 0)
	require.NoError(t, candidate.ExtendTopEdge(tech(), idgen, c, geom.Point{X: 0, Y: 0}))

	capped, err := candidate.InstallTopNode(tech(), c, rootNode())
	require.NoError(t, err)
	assert.Nil(t, capped.Top)
	assert.InDelta(t, 1.0, capped.C, 1e-9)
	assert.InDelta(t, 6.5, capped.Q, 1e-9) // 8.5 - D_buf(C_load=2) = 8.5 - 2

}

func TestFrontierInsertDominance(t *testing.T) {
	var f candidate.Frontier
	small := &candidate.Candidate{C: 1, Q: 5}
	f = f.Insert(small)
	dominated := &candidate.Candidate{C: 2, Q: 3} // worse on both axes
	f = f.Insert(dominated)
	require.Len(t, f, 1)
	assert.Same(t, small, f[0])
}

func TestFrontierInsertTieKeepsExisting(t *testing.T) {
	var f candidate.Frontier
	first := &candidate.Candidate{C: 1, Q: 5}
	second := &candidate.Candidate{C: 1, Q: 5}
	f = f.Insert(first)
	f = f.Insert(second)
	require.Len(t, f, 1)
	assert.Same(t, first, f[0])
}

func TestFrontierInsertIncomparableKeepsBoth(t *testing.T) {
	var f candidate.Frontier
	a := &candidate.Candidate{C: 1, Q: 3}
	b := &candidate.Candidate{C: 2, Q: 5}
	f = f.Insert(a)
	f = f.Insert(b)
	require.Len(t, f, 2)
}

func TestMergeFrontiersEmptyShortCircuits(t *testing.T) {
	var empty candidate.Frontier
	b := candidate.Frontier{{C: 1, Q: 1}}
	merged, err := candidate.MergeFrontiers(empty, b)
	require.NoError(t, err)
	assert.Equal(t, b, merged)
}
