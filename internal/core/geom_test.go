package core

import "testing"

func TestGridWrapEdges(t *testing.T) {
	g := Grid{W: 32, H: 24}

	tests := []struct {
		name     string
		from     Cell
		dir      Direction
		expected Cell
	}{
		{"right edge moving right", Cell{X: 31, Y: 5}, DirRight, Cell{X: 0, Y: 5}},
		{"left edge moving left", Cell{X: 0, Y: 5}, DirLeft, Cell{X: 31, Y: 5}},
		{"top edge moving up", Cell{X: 7, Y: 0}, DirUp, Cell{X: 7, Y: 23}},
		{"bottom edge moving down", Cell{X: 7, Y: 23}, DirDown, Cell{X: 7, Y: 0}},
		{"interior moving right", Cell{X: 10, Y: 10}, DirRight, Cell{X: 11, Y: 10}},
		{"corner moving up", Cell{X: 0, Y: 0}, DirUp, Cell{X: 0, Y: 23}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Step(tc.from, tc.dir)
			if result != tc.expected {
				t.Errorf("Step(%v, %v) = %v, expected %v", tc.from, tc.dir, result, tc.expected)
			}
			if !g.Contains(result) {
				t.Errorf("Step result %v is off the board", result)
			}
		})
	}
}

func TestGridWrapFarOutside(t *testing.T) {
	g := Grid{W: 5, H: 3}

	if got := g.Wrap(Cell{X: -11, Y: 7}); got != (Cell{X: 4, Y: 1}) {
		t.Errorf("Wrap(-11, 7) = %v, expected (4, 1)", got)
	}
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		w, h, size int
		expected   Grid
	}{
		{640, 480, 20, Grid{W: 32, H: 24}},
		{650, 495, 20, Grid{W: 32, H: 24}}, // partial cells dropped
		{40, 20, 20, Grid{W: 2, H: 1}},
		{640, 480, 0, Grid{}},
	}

	for _, tc := range tests {
		result := NewGrid(tc.w, tc.h, tc.size)
		if result != tc.expected {
			t.Errorf("NewGrid(%d, %d, %d) = %v, expected %v", tc.w, tc.h, tc.size, result, tc.expected)
		}
	}
}

func TestGridCenterAndCellAt(t *testing.T) {
	g := Grid{W: 32, H: 24}

	if c := g.Center(); c != (Cell{X: 16, Y: 12}) {
		t.Errorf("Center() = %v, expected (16, 12)", c)
	}
	if g.Size() != 768 {
		t.Errorf("Size() = %d, expected 768", g.Size())
	}

	seen := make(map[Cell]bool)
	for i := range g.Size() {
		c := g.CellAt(i)
		if !g.Contains(c) {
			t.Fatalf("CellAt(%d) = %v is off the board", i, c)
		}
		seen[c] = true
	}
	if len(seen) != g.Size() {
		t.Errorf("CellAt covered %d distinct cells, expected %d", len(seen), g.Size())
	}
}

func TestDirectionOpposites(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, d := range dirs {
		dx, dy := d.Vector()
		ox, oy := d.Opposite().Vector()
		if dx != -ox || dy != -oy {
			t.Errorf("%v and %v are not reverse vectors", d, d.Opposite())
		}
		if abs(dx)+abs(dy) != 1 {
			t.Errorf("%v is not a unit vector: (%d, %d)", d, dx, dy)
		}
		if !d.IsOpposite(d.Opposite()) {
			t.Errorf("%v.IsOpposite(%v) should be true", d, d.Opposite())
		}
		if d.IsOpposite(d) {
			t.Errorf("%v should not be opposite to itself", d)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
