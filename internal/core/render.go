package core

// Renderer is the drawing capability the game consumes once per tick.
// Implementations own the actual output surface; the game owns no pixels.
type Renderer interface {
	// Clear fills the whole board with the background color.
	Clear(bg Color)

	// DrawCell paints one board cell with a fill color and a border color.
	DrawCell(c Cell, fill, border Color)

	// Present makes the frame visible.
	Present() error
}

// Drawable is implemented by entities that occupy board cells.
type Drawable interface {
	Occupies() []Cell
	Color() Color
}
