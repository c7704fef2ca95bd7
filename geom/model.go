package geom

import "fmt"

// Point is an integer rectilinear coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Technology bundles the process constants that parameterize every
// delay computation in this module: one buffer model and one set of
// per-unit-length wire parasitics, held fixed for the lifetime of a run.
type Technology struct {
	DIntr float64 // buffer intrinsic delay
	CBuf  float64 // buffer input capacitance
	RBuf  float64 // buffer driver resistance
	UnitR float64 // per-unit-length wire resistance
	UnitC float64 // per-unit-length wire capacitance
}

// WireCapacitance returns the lumped capacitance of a wire of the given
// rectilinear length: C_wire = u_c · ℓ.
func (t Technology) WireCapacitance(length float64) float64 {
	return t.UnitC * length
}

// WireDelay returns the Elmore delay contributed by a wire of the given
// rectilinear length driving a downstream load cLoad:
//
//	D_wire = ½ · u_r · u_c · ℓ² + u_r · ℓ · C_load
func (t Technology) WireDelay(length, cLoad float64) float64 {
	return 0.5*t.UnitR*t.UnitC*length*length + t.UnitR*length*cLoad
}

// BufferDelay returns the Elmore delay of the buffer driving a
// downstream load cLoad: D_buf = D_intr + R_buf · C_load.
func (t Technology) BufferDelay(cLoad float64) float64 {
	return t.DIntr + t.RBuf*cLoad
}

// SegmentLength returns the rectilinear length of the polyline p,
// computed as spec.md §4 defines it: the sum, over consecutive point
// pairs, of |Δx + Δy|. Because every pair here is axis-aligned, at most
// one of Δx/Δy is non-zero, so this equals the usual L1 length.
func SegmentLength(p []Point) float64 {
	var total float64
	for i := 0; i+1 < len(p); i++ {
		dx := p[i+1].X - p[i].X
		dy := p[i+1].Y - p[i].Y
		d := dx + dy
		if d < 0 {
			d = -d
		}
		total += float64(d)
	}
	return total
}

// ValidateRectilinear reports ErrNonRectilinear if any consecutive pair
// of points in p is neither row-aligned (same Y) nor column-aligned
// (same X), i.e. is a diagonal step.
func ValidateRectilinear(p []Point) error {
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		if a.X != b.X && a.Y != b.Y {
			return fmt.Errorf("%w: points %v -> %v", ErrNonRectilinear, a, b)
		}
	}
	return nil
}

// UnitStep returns the single-lattice-unit (dx, dy) direction from from
// to to, one of (±1, 0) or (0, ±1). It fails with ErrDegenerateStep if
// from and to are not exactly one unit apart in a single cardinal
// direction.
func UnitStep(from, to Point) (dx, dy int, err error) {
	dx = to.X - from.X
	dy = to.Y - from.Y
	switch {
	case dx == 1 && dy == 0, dx == -1 && dy == 0, dx == 0 && dy == 1, dx == 0 && dy == -1:
		return dx, dy, nil
	default:
		return 0, 0, fmt.Errorf("%w: %v -> %v", ErrDegenerateStep, from, to)
	}
}

// SharesRowOrColumn reports whether a and b share an X or a Y coordinate,
// i.e. a rectilinear wire can run directly between them.
func SharesRowOrColumn(a, b Point) bool {
	return a.X == b.X || a.Y == b.Y
}
