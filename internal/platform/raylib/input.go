//go:build raylib

package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Input reads raylib's key queue.
type Input struct{}

// Poll returns the keys pressed since the last frame in press order.
// Closing the window yields ActionQuit.
func (Input) Poll() core.InputFrame {
	frame := core.NewInputFrame()
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		frame.Set(MapKey(k))
	}
	if rl.WindowShouldClose() {
		frame.Set(core.ActionQuit)
	}
	return frame
}

// MapKey translates a raylib key code to a game action.
func MapKey(k int32) core.Action {
	switch k {
	case rl.KeyUp, rl.KeyW, rl.KeyK:
		return core.ActionUp
	case rl.KeyDown, rl.KeyS, rl.KeyJ:
		return core.ActionDown
	case rl.KeyLeft, rl.KeyA, rl.KeyH:
		return core.ActionLeft
	case rl.KeyRight, rl.KeyD, rl.KeyL:
		return core.ActionRight
	case rl.KeyQ, rl.KeyEscape:
		return core.ActionQuit
	}
	return core.ActionNone
}
