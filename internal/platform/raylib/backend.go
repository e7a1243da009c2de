//go:build raylib

package raylib

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/platform/runner"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register(BackendName, func() registry.Backend { return Backend{} })
}

// BackendName is the registry name of the window backend.
const BackendName = "raylib"

// Backend runs the game in a desktop window sized to the board.
// Run must be called from the main goroutine.
type Backend struct{}

// Name returns the registry name.
func (Backend) Name() string { return BackendName }

// Description returns a one-line summary.
func (Backend) Description() string {
	return "raylib desktop window, cells drawn with pixel borders"
}

// Run opens the window, plays until it is closed and closes it.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	if err := opts.Game.Reset(opts.Config); err != nil {
		return err
	}

	w, h := opts.Config.PixelSize()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w), int32(h), opts.Game.Title())
	defer rl.CloseWindow()

	out := NewWindow(opts.Config.CellSize, opts.Game.Title(), opts.Config.TickRate)
	return runner.Run(ctx, opts.Game, Input{}, out, opts.Config.TickRate, opts.Logger)
}
