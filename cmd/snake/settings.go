package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// loadSettings loads the YAML configuration and applies the flag overrides.
func loadSettings() (config.SnakeConfig, config.Source, error) {
	cfg, src, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, src, err
	}
	if flagFPS != 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, src, nil
}

// runtimeConfig returns the validated game settings with the seed resolved.
func runtimeConfig(cfg config.SnakeConfig) (core.RuntimeConfig, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return cfg.ToRuntime(seed)
}

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// playLogger logs to --log-file, or nowhere: interactive backends own the terminal.
// The returned close function is never nil.
func playLogger() (*log.Logger, func() error, error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, "snake")
		return logger, func() error { return nil }, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f, "snake")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
