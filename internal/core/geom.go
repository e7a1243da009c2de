// Package core provides fundamental types and utilities for the snake game.
// It contains no UI dependencies (especially no Bubble Tea or tcell) to keep
// game logic pure and testable.
package core

// Cell is one grid-aligned unit of board space.
type Cell struct {
	X, Y int // Column and row
}

// Add returns the cell offset by the direction's unit vector.
// The result is not wrapped; use Grid.Wrap for that.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is one of the four unit headings.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the (dx, dy) unit vector. Row numbers grow downwards.
func (d Direction) Vector() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether d and other point in exactly reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is the board measured in cells.
type Grid struct {
	W, H int
}

// NewGrid derives board dimensions from pixel size and cell size using
// integer division, so partial cells at the right/bottom edges are dropped.
func NewGrid(pixelW, pixelH, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{}
	}
	return Grid{W: pixelW / cellSize, H: pixelH / cellSize}
}

// Size returns the total number of cells on the board.
func (g Grid) Size() int {
	return g.W * g.H
}

// Contains reports whether the cell lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Wrap maps any cell onto the board with toroidal topology:
// leaving one edge re-enters at the opposite edge on the same axis.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: wrap(c.X, g.W), Y: wrap(c.Y, g.H)}
}

// Step moves one cell from c in direction d and wraps the result.
func (g Grid) Step(c Cell, d Direction) Cell {
	return g.Wrap(c.Add(d))
}

// Center returns the canonical start cell.
func (g Grid) Center() Cell {
	return Cell{X: g.W / 2, Y: g.H / 2}
}

// CellAt returns the cell for a linear index in row-major order.
func (g Grid) CellAt(i int) Cell {
	return Cell{X: i % g.W, Y: i / g.W}
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return ((v % n) + n) % n
}

// Rect represents an axis-aligned box in screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
