//go:build raylib

// Package raylib provides a desktop window backend drawing the board with
// raylib. Build with -tags raylib; it needs cgo and the raylib system libraries.
package raylib

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Window draws board cells as filled squares with a one pixel border.
type Window struct {
	cellSize int32
	title    string
	rate     int
	last     core.GameState
	titled   bool
}

// NewWindow returns a renderer for an already opened window.
func NewWindow(cellSize int, title string, tickRate int) *Window {
	return &Window{
		cellSize: int32(cellSize),
		title:    title,
		rate:     tickRate,
	}
}

func color(c core.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// ShowState puts the counters in the window title when they change.
func (w *Window) ShowState(st core.GameState) {
	st.Tick = 0
	if w.titled && st == w.last {
		return
	}
	w.last = st
	w.titled = true
	rl.SetWindowTitle(fmt.Sprintf("%s - length %d, eaten %d, resets %d, %d ticks/s",
		w.title, st.Length, st.Eaten, st.Resets, w.rate))
}

// Clear starts a frame filled with the background color.
func (w *Window) Clear(bg core.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(color(bg))
}

// DrawCell paints one cell.
func (w *Window) DrawCell(c core.Cell, fill, border core.Color) {
	x := int32(c.X) * w.cellSize
	y := int32(c.Y) * w.cellSize
	rl.DrawRectangle(x, y, w.cellSize, w.cellSize, color(fill))
	rl.DrawRectangleLines(x, y, w.cellSize, w.cellSize, color(border))
}

// Present ends the frame. raylib also polls input events here.
func (w *Window) Present() error {
	rl.EndDrawing()
	return nil
}
