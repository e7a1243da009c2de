package tui

import (
	"context"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register(BackendName, func() registry.Backend { return Backend{} })
}

// BackendName is the registry name of the Bubble Tea backend.
const BackendName = "tui"

// Backend runs the game in the local terminal with Bubble Tea.
type Backend struct{}

// Name returns the registry name.
func (Backend) Name() string { return BackendName }

// Description returns a one-line summary.
func (Backend) Description() string {
	return "Bubble Tea terminal UI with HUD and help footer (default)"
}

// Run plays one session on the local terminal.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	return Run(ctx, opts.Game, opts.Config, opts.Logger)
}
