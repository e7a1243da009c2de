package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the player-controlled creature.
type Snake struct {
	body    []core.Cell    // Head at index 0
	heading core.Direction // Buffered direction for the next move
	facing  core.Direction // Direction of the last move
	pending int            // Future moves that keep the tail
	vacated core.Cell      // Tail cell freed by the last move
	hasVac  bool
	color   core.Color
}

// NewSnake creates a single-cell snake at start, heading right.
func NewSnake(start core.Cell, color core.Color) *Snake {
	s := &Snake{color: color}
	s.Reset(start)
	return s
}

// Reset collapses the body to a single cell at start, heads right and
// drops queued growth.
func (s *Snake) Reset(start core.Cell) {
	s.body = append(s.body[:0], start)
	s.heading = core.DirRight
	s.facing = core.DirRight
	s.pending = 0
	s.hasVac = false
}

// SetHeading buffers a new direction for the next move. Returns false when
// the intent is the exact opposite of the direction of travel or of the
// already buffered heading; such intents are ignored.
func (s *Snake) SetHeading(d core.Direction) bool {
	if d.IsOpposite(s.facing) || d.IsOpposite(s.heading) {
		return false
	}
	s.heading = d
	return true
}

// Grow queues one move that keeps the tail.
func (s *Snake) Grow() {
	s.pending++
}

// Advance moves the head one cell along the heading on grid g, wrapping
// at the edges. The tail is kept while growth is pending.
func (s *Snake) Advance(g core.Grid) {
	s.facing = s.heading
	head := g.Step(s.Head(), s.heading)

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if s.pending > 0 {
		s.pending--
		s.hasVac = false
		return
	}
	last := len(s.body) - 1
	s.vacated = s.body[last]
	s.hasVac = true
	s.body = s.body[:last]
}

// SelfCollided reports whether the head overlaps any other body cell.
func (s *Snake) SelfCollided() bool {
	head := s.Head()
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns the occupied cells, head first. The slice is owned by the
// snake and is only valid until the next move.
func (s *Snake) Body() []core.Cell {
	return s.body
}

// Len returns the number of occupied cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the direction that will be applied on the next move.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// PendingGrowth returns the number of queued growth moves.
func (s *Snake) PendingGrowth() int {
	return s.pending
}

// Vacated returns the tail cell freed by the last move, if any.
func (s *Snake) Vacated() (core.Cell, bool) {
	return s.vacated, s.hasVac
}

// Occupies implements core.Drawable.
func (s *Snake) Occupies() []core.Cell {
	return s.body
}

// Color implements core.Drawable.
func (s *Snake) Color() core.Color {
	return s.color
}
