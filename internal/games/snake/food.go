package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// Food is the single item the snake eats.
type Food struct {
	position    core.Cell
	color       core.Color
	maxAttempts int
}

// NewFood creates food at the given cell. maxAttempts bounds the random
// draws made by Relocate before it scans the board.
func NewFood(at core.Cell, color core.Color, maxAttempts int) *Food {
	return &Food{
		position:    at,
		color:       color,
		maxAttempts: maxAttempts,
	}
}

// Position returns the occupied cell.
func (f *Food) Position() core.Cell {
	return f.position
}

// Relocate moves the food to a uniformly random cell of g that is not in
// excluded. Draws are rejection sampled up to the attempt cap; after that the
// free cells are enumerated and one is picked directly. Returns ErrBoardFull
// and leaves the position unchanged when every cell is excluded.
func (f *Food) Relocate(rng *rand.Rand, g core.Grid, excluded []core.Cell) error {
	if g.Size() == 0 {
		return ErrBoardFull
	}

	taken := make(map[core.Cell]struct{}, len(excluded))
	for _, c := range excluded {
		taken[c] = struct{}{}
	}

	if len(taken) < g.Size() {
		for range f.maxAttempts {
			c := core.Cell{X: rng.Intn(g.W), Y: rng.Intn(g.H)}
			if _, ok := taken[c]; !ok {
				f.position = c
				return nil
			}
		}
	}

	// Collect all free cells
	free := make([]core.Cell, 0, max(0, g.Size()-len(taken)))
	for i := range g.Size() {
		c := g.CellAt(i)
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}

	f.position = free[rng.Intn(len(free))]
	return nil
}

// Occupies implements core.Drawable.
func (f *Food) Occupies() []core.Cell {
	return []core.Cell{f.position}
}

// Color implements core.Drawable.
func (f *Food) Color() core.Color {
	return f.color
}
