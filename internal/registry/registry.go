// Package registry provides a global registry for platform backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the interface a backend drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The backend handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state for a new session.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) (core.StepResult, error)

	// Render draws the current game state to dst and presents it.
	Render(dst core.Renderer) error

	// State returns the current counters.
	State() core.GameState
}

// Options is everything a backend needs to run one session.
type Options struct {
	Game   Game // Not yet reset; the backend calls Reset with Config
	Config core.RuntimeConfig
	Logger *log.Logger
}

// Backend presents a game on some output surface and feeds it input.
type Backend interface {
	// Name is the identifier used on the command line (e.g., "tui").
	Name() string

	// Description is a one-line summary for listings.
	Description() string

	// Run plays until the user quits, ctx is cancelled or the game fails.
	// A user quit returns nil.
	Run(ctx context.Context, opts Options) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend package's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f

	// Get description by creating a temporary instance
	descriptions[name] = f().Description()
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new backend by its name.
// Returns an error if the name is not registered.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
