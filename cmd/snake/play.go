package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Backends that draw to the controlling terminal.
var terminalBackends = map[string]bool{
	"tui":   true,
	"tcell": true,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing with the selected backend.

Controls:
  Arrows/WASD/HJKL  - Turn
  ?                 - More help (tui backend)
  Q/Esc/Ctrl+C      - Quit

The snake cannot reverse into itself; a turn opposite to the direction of
travel is ignored.

Examples:
  snake play
  snake play --backend tcell
  snake play --fps 10 --seed 42 --log-file snake.log --log-level debug
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	backend, err := registry.Create(flagBackend)
	if err != nil {
		return fmt.Errorf("%w (run 'snake backends' to list them)", err)
	}

	if terminalBackends[backend.Name()] && !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play: stdout is not a terminal")
	}

	cfg, src, err := loadSettings()
	if err != nil {
		return err
	}
	rt, err := runtimeConfig(cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", backend.Name(), "config", src,
		"grid", fmt.Sprintf("%dx%d", rt.Grid.W, rt.Grid.H), "tick_rate", rt.TickRate, "seed", rt.Seed)

	err = backend.Run(ctx, registry.Options{
		Game:   snake.New(),
		Config: rt,
		Logger: logger,
	})
	if err != nil {
		logger.Error("stopped", "err", err)
		return err
	}
	logger.Info("stopped")
	return nil
}
