package ginneken

import (
	"fmt"

	"github.com/yanelox/vanginneken/candidate"
	"github.com/yanelox/vanginneken/geom"
	"github.com/yanelox/vanginneken/ttree"
)

// Result is the winning Candidate after renumbering, plus the aggregate
// downstream capacitance and required-arrival-time it carries at the
// root after Install-Top-Node capped the root buffer: C is the root
// buffer's input capacitance and Q already includes its delay
// (spec.md §4.8 step 4, §6 debug fields).
type Result struct {
	Nodes []ttree.Node
	Edges []ttree.Edge
	C, Q  float64
}

// frame is one level of the explicit post-order traversal stack: the
// node being visited and how many of its children have been folded
// into acc so far.
type frame struct {
	nodeID   int
	childIdx int
	acc      candidate.Frontier
}

// Run executes the Van Ginneken dynamic program over tree and returns
// the renumbered winning output tree rooted at the driving buffer
// (spec.md §4.8). The traversal is iterative post-order: no Go
// call-stack recursion is used, so tree depth is bounded only by
// available memory.
func Run(tech geom.Technology, tree *ttree.Tree) (*Result, error) {
	idgen := ttree.NewIDGen(tree)
	memo := make(map[int]candidate.Frontier, len(tree.Nodes))

	stack := []frame{{nodeID: tree.Root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		node, ok := tree.NodeByID(top.nodeID)
		if !ok {
			return nil, fmt.Errorf("%w: node %d", ErrMissingEdge, top.nodeID)
		}

		if node.Kind == ttree.Terminal {
			memo[top.nodeID] = candidate.Frontier{candidate.NewTerminal(node)}
			stack = stack[:len(stack)-1]
			continue
		}

		if top.childIdx < len(node.Children) {
			childID := node.Children[top.childIdx]

			if childFrontier, done := memo[childID]; done {
				merged, err := foldChild(tech, idgen, tree, top.nodeID, node, childID, childFrontier, top.acc)
				if err != nil {
					return nil, err
				}
				top.acc = merged
				top.childIdx++
				continue
			}
			stack = append(stack, frame{nodeID: childID})
			continue
		}

		// All children folded into top.acc: one final Pareto pass, per
		// spec.md §4.8 step 2's "apply a final Pareto pruning". Folds of
		// a second or later child already pruned via Frontier.Insert,
		// but the first child's capped frontier is taken over as is, and
		// capping with a buffer (at the root) gives every member the same
		// C, so this pass can drop members there.
		var final candidate.Frontier
		for _, c := range top.acc {
			final = final.Insert(c)
		}
		memo[top.nodeID] = final
		for _, childID := range node.Children {
			delete(memo, childID) // child frontiers aren't needed past this point
		}
		stack = stack[:len(stack)-1]
	}

	root := memo[tree.Root]
	best := root.Best()
	if best == nil {
		return nil, ErrEmptyFrontier
	}
	return renumber(best), nil
}

// foldChild walks the edge from childID up to parentID, installs the
// parent node onto every surviving candidate, and merges the result
// into acc (spec.md §4.8 step 2).
func foldChild(tech geom.Technology, idgen *ttree.IDGen, tree *ttree.Tree, parentID int, parent ttree.Node, childID int, childFrontier candidate.Frontier, acc candidate.Frontier) (candidate.Frontier, error) {
	edge, ok := tree.EdgeBetween(parentID, childID)
	if !ok {
		return nil, fmt.Errorf("%w: %d -> %d", ErrMissingEdge, parentID, childID)
	}

	walked, err := walkEdge(tech, idgen, edge, childFrontier)
	if err != nil {
		return nil, err
	}

	capped := make(candidate.Frontier, 0, len(walked))
	for _, c := range walked {
		installed, err := candidate.InstallTopNode(tech, c, parent)
		if err != nil {
			return nil, err
		}
		capped = append(capped, installed)
	}

	return candidate.MergeFrontiers(acc, capped)
}

// renumber relabels c's Nodes and Edges to compact, zero-based IDs,
// preserving every children/vertex reference, and records c's aggregate
// C/Q on the returned Result (spec.md §4.8 step 4).
func renumber(c *candidate.Candidate) *Result {
	idMap := make(map[int]int, len(c.Nodes))
	nodes := make([]ttree.Node, len(c.Nodes))
	for i, n := range c.Nodes {
		idMap[n.ID] = i
		cp := n
		cp.ID = i
		nodes[i] = cp
	}
	for i := range nodes {
		if len(nodes[i].Children) == 0 {
			continue
		}
		remapped := make([]int, len(nodes[i].Children))
		for j, childID := range nodes[i].Children {
			remapped[j] = idMap[childID]
		}
		nodes[i].Children = remapped
	}

	edges := make([]ttree.Edge, len(c.Edges))
	for i, e := range c.Edges {
		edges[i] = ttree.Edge{
			ID:       i,
			Parent:   idMap[e.Parent],
			Child:    idMap[e.Child],
			Segments: append([]geom.Point(nil), e.Segments...),
		}
	}

	return &Result{Nodes: nodes, Edges: edges, C: c.C, Q: c.Q}
}
