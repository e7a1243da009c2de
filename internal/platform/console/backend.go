package console

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/platform/runner"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register(BackendName, func() registry.Backend { return Backend{} })
}

// BackendName is the registry name of the tcell backend.
const BackendName = "tcell"

// Backend runs the game directly on a tcell screen.
type Backend struct {
	// NewScreen creates the terminal screen. Defaults to tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)
}

// Name returns the registry name.
func (Backend) Name() string { return BackendName }

// Description returns a one-line summary.
func (Backend) Description() string {
	return "tcell terminal renderer with truecolor cells"
}

// Run initializes the terminal, plays until quit and restores the terminal.
func (b Backend) Run(ctx context.Context, opts registry.Options) error {
	newScreen := b.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	s, err := newScreen()
	if err != nil {
		return fmt.Errorf("tcell: create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tcell: init screen: %w", err)
	}
	defer s.Fini()
	s.HideCursor()

	if err := opts.Game.Reset(opts.Config); err != nil {
		return err
	}

	in := NewInput(s)
	out := NewScreen(s, opts.Config.Grid, opts.Game.Title(), opts.Config.TickRate)
	return runner.Run(ctx, opts.Game, in, out, opts.Config.TickRate, opts.Logger)
}
