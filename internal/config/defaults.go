package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    640,
			Height:   480,
			CellSize: 20,
		},
		TickRate: 20,
		Colors: ColorConfig{
			Background: "#000000",
			Border:     "#5DD8E4",
			Food:       "#FF0000",
			Snake:      "#00FF00",
		},
		Food: FoodConfig{
			MaxAttempts: 1024,
		},
	}
}
