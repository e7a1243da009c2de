// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is returned by Validate for any out-of-range setting.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board    BoardConfig `yaml:"board"`
	TickRate int         `yaml:"tick_rate"`
	Colors   ColorConfig `yaml:"colors"`
	Food     FoodConfig  `yaml:"food"`
}

// BoardConfig defines the board size in pixels and the cell edge.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// ColorConfig holds hex colors ("#rrggbb") for every drawn element.
type ColorConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Food       string `yaml:"food"`
	Snake      string `yaml:"snake"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, b.Width, b.Height)
	case b.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %d", ErrInvalid, b.CellSize)
	case b.CellSize > b.Width || b.CellSize > b.Height:
		return fmt.Errorf("%w: cell_size %d larger than board %dx%d", ErrInvalid, b.CellSize, b.Width, b.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.TickRate)
	case c.Food.MaxAttempts < 0:
		return fmt.Errorf("%w: food.max_attempts %d", ErrInvalid, c.Food.MaxAttempts)
	}

	if _, err := c.Colors.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the hex colors.
func (c ColorConfig) Palette() (core.Palette, error) {
	var pal core.Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"background", c.Background, &pal.Background},
		{"border", c.Border, &pal.Border},
		{"food", c.Food, &pal.Food},
		{"snake", c.Snake, &pal.Snake},
	}

	for _, f := range fields {
		col, err := parseColor(f.hex)
		if err != nil {
			return pal, fmt.Errorf("%w: colors.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = col
	}
	return pal, nil
}

func parseColor(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color{}, err
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}

// ToRuntime validates the configuration and converts it to the settings
// the game runs with. The grid is the board size divided by the cell size,
// rounded down.
func (c SnakeConfig) ToRuntime(seed int64) (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	pal, _ := c.Colors.Palette()

	return core.RuntimeConfig{
		Grid:            core.NewGrid(c.Board.Width, c.Board.Height, c.Board.CellSize),
		CellSize:        c.Board.CellSize,
		TickRate:        c.TickRate,
		Seed:            seed,
		Palette:         pal,
		MaxFoodAttempts: c.Food.MaxAttempts,
	}, nil
}
