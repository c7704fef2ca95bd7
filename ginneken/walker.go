package ginneken

import (
	"github.com/yanelox/vanginneken/candidate"
	"github.com/yanelox/vanginneken/geom"
	"github.com/yanelox/vanginneken/ttree"
)

// segmentDirection returns the unit (dx, dy) direction from start to end,
// which must be row- or column-aligned (already guaranteed by
// ttree.New's rectilinearity check). A zero-length segment yields (0, 0)
// and is skipped by the caller.
func segmentDirection(start, end geom.Point) (dx, dy int) {
	switch {
	case start == end:
		return 0, 0
	case start.Y == end.Y:
		if end.X > start.X {
			return 1, 0
		}
		return -1, 0
	default: // start.X == end.X
		if end.Y > start.Y {
			return 0, 1
		}
		return 0, -1
	}
}

// walkEdge implements spec.md §4.5: it reverses edge into child→parent
// orientation, then advances every candidate in frontier one lattice
// unit at a time from the child's coordinate up to (but excluding) the
// parent's coordinate, speculatively splicing a buffer at each integer
// point and Pareto-inserting the buffered variant. The final parent
// coordinate is only plain-extended (no buffer candidate at that exact
// point — that is the job of Install-Top-Node, run by the caller).
func walkEdge(tech geom.Technology, idgen *ttree.IDGen, edge ttree.Edge, frontier candidate.Frontier) (candidate.Frontier, error) {
	walkOriented := edge.Reversed() // now child -> parent
	segs := walkOriented.Segments

	f := frontier
	for i := 0; i+1 < len(segs); i++ {
		start, end := segs[i], segs[i+1]
		dx, dy := segmentDirection(start, end)
		if dx == 0 && dy == 0 {
			continue
		}

		for cur := start; cur != end; cur = cur.Add(dx, dy) {
			for _, c := range f {
				if err := candidate.ExtendTopEdge(tech, idgen, c, cur); err != nil {
					return nil, err
				}
			}

			// Buffered variants are derived from the frontier as it
			// stood right after the extension above; later buffered
			// variants in this same step are still inserted against a
			// frontier that already includes earlier ones from this
			// step (spec.md §4.5 step 2b-c).
			snapshot := append(candidate.Frontier(nil), f...)
			for _, c := range snapshot {
				buffered, err := candidate.TryInsertBuffer(tech, idgen, c, cur)
				if err != nil {
					return nil, err
				}
				f = f.Insert(buffered)
			}
		}
	}

	final := segs[len(segs)-1]
	for _, c := range f {
		if err := candidate.ExtendTopEdge(tech, idgen, c, final); err != nil {
			return nil, err
		}
	}
	return f, nil
}
