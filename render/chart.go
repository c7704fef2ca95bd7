package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

const (
	chartSize   = 1000
	chartMargin = 60
	gridLines   = 10
)

var (
	colorAxis  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorGrid  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	colorPoint = color.RGBA{R: 200, G: 40, B: 40, A: 255}
)

// RenderLineChart draws xs/ys as a marker-and-line plot with gridlines
// onto a PNG written to w.
func RenderLineChart(xs, ys []float64, w io.Writer) error {
	if len(xs) != len(ys) {
		return ErrMismatchedSeries
	}
	if len(xs) == 0 {
		return ErrEmptyTree
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		minX, maxX = minFloat(minX, xs[i]), maxFloat(maxX, xs[i])
		minY, maxY = minFloat(minY, ys[i]), maxFloat(maxY, ys[i])
	}
	if minX == maxX {
		maxX = minX + 1
	}
	if minY == maxY {
		maxY = minY + 1
	}

	img := image.NewRGBA(image.Rect(0, 0, chartSize, chartSize))
	fillBackground(img, colorBG)
	drawGrid(img, gridLines)

	project := func(x, y float64) image.Point {
		usable := float64(chartSize - 2*chartMargin)
		px := chartMargin + int((x-minX)/(maxX-minX)*usable)
		py := chartSize - chartMargin - int((y-minY)/(maxY-minY)*usable)
		return image.Point{X: px, Y: py}
	}

	var prev image.Point
	for i := range xs {
		p := project(xs[i], ys[i])
		if i > 0 {
			drawLine(img, prev.X, prev.Y, p.X, p.Y, colorPoint)
		}
		drawDisc(img, p.X, p.Y, 3, colorPoint)
		prev = p
	}

	drawAxes(img)
	return png.Encode(w, img)
}

func drawGrid(img *image.RGBA, lines int) {
	usable := chartSize - 2*chartMargin
	for i := 0; i <= lines; i++ {
		x := chartMargin + i*usable/lines
		drawLine(img, x, chartMargin, x, chartSize-chartMargin, colorGrid)
		y := chartMargin + i*usable/lines
		drawLine(img, chartMargin, y, chartSize-chartMargin, y, colorGrid)
	}
}

func drawAxes(img *image.RGBA) {
	drawLine(img, chartMargin, chartMargin, chartMargin, chartSize-chartMargin, colorAxis)
	drawLine(img, chartMargin, chartSize-chartMargin, chartSize-chartMargin, chartSize-chartMargin, colorAxis)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
