package render

import "errors"

// ErrEmptyTree indicates RenderTree was given a result with no nodes,
// or RenderLineChart was given empty series.
var ErrEmptyTree = errors.New("render: result has no nodes")

// ErrMismatchedSeries indicates RenderLineChart was given x/y slices of
// different lengths.
var ErrMismatchedSeries = errors.New("render: x and y series have different lengths")
