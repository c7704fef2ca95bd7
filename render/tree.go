package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yanelox/vanginneken/ginneken"
	"github.com/yanelox/vanginneken/ttree"
)

const (
	canvasSize  = 1000
	marginPx    = 40
	nodeRadiusP = 4
)

var (
	colorBuffer   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	colorSteiner  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	colorTerminal = color.RGBA{R: 40, G: 80, B: 200, A: 255}
	colorEdge     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorBG       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// RenderTree draws res's node/edge geometry to a PNG written to w. Node
// color encodes Kind (buffer/steiner/terminal); edges are drawn as
// their rectilinear polylines.
func RenderTree(res *ginneken.Result, w io.Writer) error {
	if len(res.Nodes) == 0 {
		return ErrEmptyTree
	}

	minX, minY, maxX, maxY := res.Nodes[0].Point.X, res.Nodes[0].Point.Y, res.Nodes[0].Point.X, res.Nodes[0].Point.Y
	for _, n := range res.Nodes {
		minX, maxX = minInt(minX, n.Point.X), maxInt(maxX, n.Point.X)
		minY, maxY = minInt(minY, n.Point.Y), maxInt(maxY, n.Point.Y)
	}

	proj := newProjector(minX, minY, maxX, maxY, canvasSize, marginPx)

	img := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	fillBackground(img, colorBG)

	for _, e := range res.Edges {
		for i := 0; i+1 < len(e.Segments); i++ {
			a := proj.project(e.Segments[i].X, e.Segments[i].Y)
			b := proj.project(e.Segments[i+1].X, e.Segments[i+1].Y)
			drawLine(img, a.X, a.Y, b.X, b.Y, colorEdge)
		}
	}

	for _, n := range res.Nodes {
		p := proj.project(n.Point.X, n.Point.Y)
		drawDisc(img, p.X, p.Y, nodeRadiusP, nodeColor(n.Kind))
	}

	return png.Encode(w, img)
}

func nodeColor(k ttree.Kind) color.RGBA {
	switch k {
	case ttree.Buffer:
		return colorBuffer
	case ttree.Terminal:
		return colorTerminal
	default:
		return colorSteiner
	}
}

// projector maps integer lattice coordinates onto canvas pixels,
// preserving aspect ratio and flipping Y (image rows grow downward).
type projector struct {
	minX, minY int
	scaleX     float64
	scaleY     float64
	size       int
	margin     int
}

func newProjector(minX, minY, maxX, maxY, size, margin int) projector {
	spanX := maxX - minX
	spanY := maxY - minY
	usable := float64(size - 2*margin)

	sx, sy := 1.0, 1.0
	if spanX > 0 {
		sx = usable / float64(spanX)
	}
	if spanY > 0 {
		sy = usable / float64(spanY)
	}
	scale := sx
	if sy < scale {
		scale = sy
	}

	return projector{minX: minX, minY: minY, scaleX: scale, scaleY: scale, size: size, margin: margin}
}

func (p projector) project(x, y int) image.Point {
	px := p.margin + int(float64(x-p.minX)*p.scaleX)
	py := p.size - p.margin - int(float64(y-p.minY)*p.scaleY)
	return image.Point{X: px, Y: py}
}

func fillBackground(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawLine renders a straight segment via Bresenham's algorithm.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if img.Bounds().Min.X <= x0 && x0 < img.Bounds().Max.X && img.Bounds().Min.Y <= y0 && y0 < img.Bounds().Max.Y {
			img.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawDisc fills a filled circle of the given radius centered at (cx, cy).
func drawDisc(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if img.Bounds().Min.X <= x && x < img.Bounds().Max.X && img.Bounds().Min.Y <= y && y < img.Bounds().Max.Y {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
