package core

import (
	"fmt"

	"terrarium/internal/material"
)

// Point addresses a cell by row and column. It is comparable and used
// directly as a map key.
type Point struct {
	Row, Col int
}

// Grid stores a 2D grid of materials in row-major order. Coordinates outside
// the grid read as material.Wall and can never be written.
type Grid struct {
	W, H int
	data []material.State
}

// NewGrid allocates an all-empty grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Grid{W: w, H: h, data: make([]material.State, w*h)}, nil
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []material.State { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// In reports whether (row, col) lies inside the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Get returns the material at (row, col), or material.Wall outside the grid.
func (g *Grid) Get(row, col int) material.State {
	if !g.In(row, col) {
		return material.Wall
	}
	return g.data[row*g.W+col]
}

// Set writes s at (row, col). Writes outside the grid and writes of
// material.Wall fail with ErrOutOfBounds.
func (g *Grid) Set(row, col int, s material.State) error {
	if err := g.CheckWrite(row, col, s); err != nil {
		return err
	}
	g.data[row*g.W+col] = s
	return nil
}

// CheckWrite validates a write without performing it.
func (g *Grid) CheckWrite(row, col int, s material.State) error {
	if !g.In(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.W, g.H)
	}
	if s == material.Wall || !s.Valid() {
		return fmt.Errorf("%w: cannot write %v at (%d,%d)", ErrOutOfBounds, s, row, col)
	}
	return nil
}

// Swap exchanges the contents of two in-grid cells.
func (g *Grid) Swap(a, b Point) {
	ia, ib := g.Index(a.Row, a.Col), g.Index(b.Row, b.Col)
	g.data[ia], g.data[ib] = g.data[ib], g.data[ia]
}

// Neighbors appends the up to eight in-grid Moore neighbors of p to buf.
func (g *Grid) Neighbors(p Point, buf []Point) []Point {
	for r := max(p.Row-1, 0); r < min(p.Row+2, g.H); r++ {
		for c := max(p.Col-1, 0); c < min(p.Col+2, g.W); c++ {
			if r == p.Row && c == p.Col {
				continue
			}
			buf = append(buf, Point{Row: r, Col: c})
		}
	}
	return buf
}

// Count returns how many cells hold s.
func (g *Grid) Count(s material.State) int {
	n := 0
	for _, v := range g.data {
		if v == s {
			n++
		}
	}
	return n
}

// Clear fills the grid with material.Empty.
func (g *Grid) Clear() {
	clear(g.data)
}
