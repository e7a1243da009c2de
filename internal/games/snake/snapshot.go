package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Eaten   int
	Resets  int
	Body    []core.Cell
	Heading core.Direction
	Pending int
	Food    core.Cell
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	body := make([]core.Cell, g.snake.Len())
	copy(body, g.snake.Body())

	return Snapshot{
		Tick:    g.tick,
		Eaten:   g.eaten,
		Resets:  g.resets,
		Body:    body,
		Heading: g.snake.Heading(),
		Pending: g.snake.PendingGrowth(),
		Food:    g.food.Position(),
	}
}

// Head returns the head cell of the captured body.
func (s Snapshot) Head() core.Cell {
	return s.Body[0]
}
