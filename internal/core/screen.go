package core

import (
	"strings"
)

// CellWidth is the number of terminal columns used for one board cell.
// Terminal glyphs are roughly twice as tall as wide, so two columns keep
// board cells square.
const CellWidth = 2

// ScreenCell is one styled terminal character.
type ScreenCell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Screen is a 2D styled character buffer for terminal backends.
// It decouples game rendering from the terminal: the game draws board cells
// while the platform handles actual display.
type Screen struct {
	width   int
	height  int
	cells   [][]ScreenCell
	bg      Color
	fg      Color
	originX int // Column of board cell (0, 0)
	originY int // Row of board cell (0, 0)
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		fg:     RGB(255, 255, 255),
	}
	s.allocate()
	s.Clear(s.bg)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]ScreenCell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]ScreenCell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// SetOrigin sets the screen position of board cell (0, 0).
func (s *Screen) SetOrigin(x, y int) {
	s.originX = x
	s.originY = y
}

// SetForeground sets the text color used by Set, DrawText and DrawBox.
func (s *Screen) SetForeground(fg Color) {
	s.fg = fg
}

// Resize changes the screen dimensions. Content is discarded; the next
// frame redraws everything.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(s.bg)
}

// Clear fills the entire screen with spaces on the given background.
func (s *Screen) Clear(bg Color) {
	s.bg = bg
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ScreenCell{Rune: ' ', Fg: s.fg, Bg: bg}
		}
	}
}

// DrawCell paints board cell c as a full block in the fill color, with the
// right half of the last column in the border color.
func (s *Screen) DrawCell(c Cell, fill, border Color) {
	x := s.originX + c.X*CellWidth
	y := s.originY + c.Y
	for i := 0; i < CellWidth-1; i++ {
		s.SetCell(x+i, y, ScreenCell{Rune: '█', Fg: fill, Bg: fill})
	}
	s.SetCell(x+CellWidth-1, y, ScreenCell{Rune: '▌', Fg: fill, Bg: border})
}

// Present is a no-op: whoever owns the screen reads it after the frame.
func (s *Screen) Present() error {
	return nil
}

// SetCell places a styled cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c ScreenCell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Set places a rune at the given position using the default colors.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, ScreenCell{Rune: r, Fg: s.fg, Bg: s.bg})
}

// GetCell returns the styled cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) ScreenCell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ScreenCell{Rune: ' ', Fg: s.fg, Bg: s.bg}
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
