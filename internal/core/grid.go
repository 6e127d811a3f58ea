package core

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports a coordinate outside the grid bounds.
var ErrOutOfRange = errors.New("coordinate out of range")

// OutOfRangeError carries the offending coordinate and the grid dimensions.
type OutOfRangeError struct {
	X, Y int
	W, H int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("(%d,%d) outside %dx%d grid: %v", e.X, e.Y, e.W, e.H, ErrOutOfRange)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Cell is a single grid location. The zero value is an empty cell, so every
// color, including pure black, is a valid particle color.
type Cell struct {
	Filled bool
	Color  Color
}

// Empty is the cell value used for unoccupied locations.
var Empty = Cell{}

// Sand returns a filled cell with the provided color.
func Sand(c Color) Cell { return Cell{Filled: true, Color: c} }

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Grid stores a fixed-size 2D array of cells in row-major order.
//
// Accessors panic with *OutOfRangeError when handed coordinates outside the
// grid; callers are expected to check InBounds first. Lookup is the
// error-returning variant for code that cannot pre-check.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.data }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int {
	g.mustContain(x, y)
	return y*g.W + x
}

// At returns the cell stored at (x, y).
func (g *Grid) At(x, y int) Cell { return g.data[g.Index(x, y)] }

// Get returns the color stored at (x, y). Empty cells report the zero color.
func (g *Grid) Get(x, y int) Color { return g.data[g.Index(x, y)].Color }

// Lookup is the checked form of At.
func (g *Grid) Lookup(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Empty, g.rangeError(x, y)
	}
	return g.data[y*g.W+x], nil
}

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) { g.data[g.Index(x, y)] = c }

// Fill places a particle of color c at (x, y).
func (g *Grid) Fill(x, y int, c Color) { g.Set(x, y, Sand(c)) }

// IsEmpty reports whether (x, y) holds no particle.
func (g *Grid) IsEmpty(x, y int) bool { return !g.data[g.Index(x, y)].Filled }

// Swap exchanges the contents of two cells.
func (g *Grid) Swap(a, b Point) {
	i, j := g.Index(a.X, a.Y), g.Index(b.X, b.Y)
	g.data[i], g.data[j] = g.data[j], g.data[i]
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}

// Count returns the number of filled cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.data {
		if c.Filled {
			n++
		}
	}
	return n
}

func (g *Grid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(g.rangeError(x, y))
	}
}

func (g *Grid) rangeError(x, y int) *OutOfRangeError {
	return &OutOfRangeError{X: x, Y: y, W: g.W, H: g.H}
}
