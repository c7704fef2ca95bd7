// Package render draws the result tree and the sweep harness's
// time/RAT-vs-length curves to PNG.
//
// This is an external, presentation-only concern (spec.md §1 scopes
// "visualization, file I/O wrappers" out of the core), so it is built
// entirely on the standard library's image/image/color/image/png — no
// example repo in the corpus imports a charting or 2D-graphics
// library, so there is nothing to ground a third-party choice on here.
package render
