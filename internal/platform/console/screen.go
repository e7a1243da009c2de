// Package console provides the tcell backend: a core.Renderer drawing board
// cells straight to a tcell.Screen and a non-blocking keyboard InputSource.
package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Screen draws the board centered on a tcell screen, with a status line above it.
type Screen struct {
	screen   tcell.Screen
	grid     core.Grid
	title    string
	state    core.GameState
	rate     int
	originX  int
	originY  int
	tooSmall bool
}

// NewScreen wraps an initialized tcell screen for a board of the given size.
func NewScreen(s tcell.Screen, grid core.Grid, title string, tickRate int) *Screen {
	return &Screen{
		screen: s,
		grid:   grid,
		title:  title,
		rate:   tickRate,
	}
}

func style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(fg)).
		Background(rgb(bg))
}

func rgb(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ShowState sets the counters shown on the status line of the next frame.
func (s *Screen) ShowState(st core.GameState) {
	s.state = st
}

// Clear fills the terminal with the background color, lays the board out
// for the current terminal size and draws the status line.
func (s *Screen) Clear(bg core.Color) {
	base := style(core.RGB(255, 255, 255), bg)
	s.screen.Fill(' ', base)

	w, h := s.screen.Size()
	boardW := s.grid.W * core.CellWidth
	s.tooSmall = w < boardW || h < s.grid.H+1
	if s.tooSmall {
		s.text((w-16)/2, h/2, "Window too small", base.Bold(true))
		return
	}

	s.originX = (w - boardW) / 2
	s.originY = 1 + (h-s.grid.H-1)/2
	status := fmt.Sprintf("%s  length %d  eaten %d  resets %d  %d ticks/s  (q to quit)",
		s.title, s.state.Length, s.state.Eaten, s.state.Resets, s.rate)
	s.text(s.originX, s.originY-1, status, base)
}

// DrawCell paints one board cell as two columns: a full block in the fill
// color and a half block whose right half shows the border color.
func (s *Screen) DrawCell(c core.Cell, fill, border core.Color) {
	if s.tooSmall {
		return
	}
	x := s.originX + c.X*core.CellWidth
	y := s.originY + c.Y
	s.screen.SetContent(x, y, '█', nil, style(fill, fill))
	s.screen.SetContent(x+1, y, '▌', nil, style(fill, border))
}

// Present shows the frame.
func (s *Screen) Present() error {
	s.screen.Show()
	return nil
}

// Origin returns the terminal position of board cell (0, 0).
func (s *Screen) Origin() (int, int) {
	return s.originX, s.originY
}

func (s *Screen) text(x, y int, str string, st tcell.Style) {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, st)
		x++
	}
}
