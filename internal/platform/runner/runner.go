// Package runner drives a game at a fixed tick rate for backends that poll
// their input, such as tcell and raylib.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// InputSource delivers the actions that arrived since the previous poll,
// in arrival order. Poll must not block.
type InputSource interface {
	Poll() core.InputFrame
}

// StateViewer is implemented by renderers that display the game counters.
type StateViewer interface {
	ShowState(st core.GameState)
}

// Run renders the initial frame and then, once per tick, polls input,
// steps the game and renders it. The game must already be reset.
//
// Run returns nil when the input contains ActionQuit or ctx is cancelled,
// and the error otherwise. A quit frame is not stepped.
func Run(ctx context.Context, game registry.Game, in InputSource, out core.Renderer, tickRate int, logger *log.Logger) error {
	if tickRate <= 0 {
		return fmt.Errorf("runner: tick rate %d", tickRate)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := render(game, out); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("loop cancelled", "tick", game.State().Tick)
			return nil
		case <-ticker.C:
		}

		frame := in.Poll()
		if frame.Has(core.ActionQuit) {
			logger.Debug("quit requested", "tick", game.State().Tick)
			return nil
		}

		result, err := game.Step(frame)
		if err != nil {
			logger.Error("game stopped", "tick", result.State.Tick, "err", err)
			return fmt.Errorf("runner: tick %d: %w", result.State.Tick, err)
		}
		if result.Ate {
			logger.Debug("food eaten", "tick", result.State.Tick, "length", result.State.Length)
		}
		if result.Reset {
			logger.Debug("snake reset", "tick", result.State.Tick, "resets", result.State.Resets)
		}

		if err := render(game, out); err != nil {
			return err
		}
	}
}

func render(game registry.Game, out core.Renderer) error {
	if sv, ok := out.(StateViewer); ok {
		sv.ShowState(game.State())
	}
	if err := game.Render(out); err != nil {
		return fmt.Errorf("runner: render: %w", err)
	}
	return nil
}
