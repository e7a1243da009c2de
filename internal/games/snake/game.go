// Package snake implements the single-player wrap-around Snake game.
//
// The game is a pure state machine driven by Step: it never sleeps, reads
// the keyboard or owns a frame buffer. Platform backends pace the ticks,
// collect input into a core.InputFrame and pass a core.Renderer to Render.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is one play session: the board, the RNG and the snake/food pair.
type Game struct {
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	tick   uint64
	eaten  int // Food eaten since the last reset
	resets int

	snake *Snake
	food  *Food
}

// New creates a Snake game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new session: the snake is placed at the board center
// heading right and the food is placed on a random free cell.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	if cfg.Grid.Size() == 0 {
		return fmt.Errorf("snake: empty board %dx%d", cfg.Grid.W, cfg.Grid.H)
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.eaten = 0
	g.resets = 0

	g.snake = NewSnake(cfg.Grid.Center(), cfg.Palette.Snake)
	g.food = NewFood(cfg.Grid.Center(), cfg.Palette.Food, cfg.MaxFoodAttempts)
	if err := g.food.Relocate(g.rng, cfg.Grid, g.snake.Body()); err != nil {
		return fmt.Errorf("snake: initial food: %w", err)
	}
	return nil
}

// Step advances the game by one tick:
//
//  1. every directional action in the frame is offered to the snake, in order;
//  2. if the head (before moving) is on the food, the snake grows and the
//     food is relocated away from the body;
//  3. the snake moves one cell;
//  4. if the new head hits the body, the snake is reset.
//
// Eating is detected on the tick after the head reaches the food.
// The only error is ErrBoardFull from food placement.
func (g *Game) Step(input core.InputFrame) (core.StepResult, error) {
	g.tick++
	var result core.StepResult

	for _, a := range input.Actions {
		if dir, ok := a.Direction(); ok {
			g.snake.SetHeading(dir)
		}
	}

	if g.snake.Head() == g.food.Position() {
		g.snake.Grow()
		g.eaten++
		result.Ate = true
		if err := g.food.Relocate(g.rng, g.cfg.Grid, g.snake.Body()); err != nil {
			result.State = g.State()
			return result, err
		}
	}

	g.snake.Advance(g.cfg.Grid)

	if g.snake.SelfCollided() {
		g.snake.Reset(g.cfg.Grid.Center())
		g.eaten = 0
		g.resets++
		result.Reset = true
	}

	result.State = g.State()
	return result, nil
}

// Render draws the board to dst and presents the frame.
func (g *Game) Render(dst core.Renderer) error {
	pal := g.cfg.Palette
	dst.Clear(pal.Background)

	if cell, ok := g.snake.Vacated(); ok {
		dst.DrawCell(cell, pal.Background, pal.Background)
	}

	for _, e := range []core.Drawable{g.food, g.snake} {
		for _, cell := range e.Occupies() {
			dst.DrawCell(cell, e.Color(), pal.Border)
		}
	}

	return dst.Present()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Length: g.snake.Len(),
		Eaten:  g.eaten,
		Resets: g.resets,
		Tick:   g.tick,
	}
}
