package core

// RuntimeConfig contains configuration passed to the game at initialization.
// It is fixed for the lifetime of a session.
type RuntimeConfig struct {
	Grid            Grid    // Board size in cells
	CellSize        int     // Cell edge in pixels (windowed backends)
	TickRate        int     // Simulation ticks per second
	Seed            int64   // RNG seed for deterministic gameplay
	Palette         Palette // Frame colors
	MaxFoodAttempts int     // Random draws before food placement falls back to a scan
}

// DefaultConfig returns a RuntimeConfig for a 640x480 board of 20px cells.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:            NewGrid(640, 480, 20),
		CellSize:        20,
		TickRate:        20,
		Seed:            0, // 0 means use current time in platform layer
		Palette:         DefaultPalette(),
		MaxFoodAttempts: 1024,
	}
}

// PixelSize returns the board size in pixels.
func (c RuntimeConfig) PixelSize() (int, int) {
	return c.Grid.W * c.CellSize, c.Grid.H * c.CellSize
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Length int // Current snake length
	Eaten  int // Food eaten since the last reset
	Resets int // Self-collisions this session
	Tick   uint64
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State GameState
	Ate   bool // Food was eaten this tick
	Reset bool // The snake hit itself and was reset this tick
}
