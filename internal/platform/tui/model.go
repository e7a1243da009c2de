package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Rows taken by the HUD line above the board and the help footer below it.
const chromeRows = 2

var (
	hudStyle      = lipgloss.NewStyle().Bold(true)
	tooSmallStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	width      int // Terminal size, 0 until the first resize message
	height     int
	err        error
	quitting   bool
}

// NewModel resets the game and creates a Bubble Tea model around it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	return Model{
		game:       game,
		screen:     newBoardScreen(cfg.Grid),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
	}, nil
}

// newBoardScreen returns a screen holding the board inside a one-cell frame.
func newBoardScreen(g core.Grid) *core.Screen {
	s := core.NewScreen(g.W*core.CellWidth+2, g.H+2)
	s.SetOrigin(1, 1)
	return s
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
		}
	default:
		// Copy so earlier model values never share the backing array
		frame := m.inputFrame.Clone()
		frame.Set(action)
		m.inputFrame = frame
	}

	return m, nil
}

// handleResize records the terminal size. The board keeps its size; a
// terminal that cannot fit it shows an overlay until it grows again.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result, err := m.game.Step(m.inputFrame)
	m.inputFrame = core.NewInputFrame()
	m.gameState = result.State

	if err != nil {
		m.logger.Error("game stopped", "tick", result.State.Tick, "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if result.Ate {
		m.logger.Debug("food eaten", "tick", result.State.Tick, "length", result.State.Length)
	}
	if result.Reset {
		m.logger.Debug("snake reset", "tick", result.State.Tick, "resets", result.State.Resets)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// TooSmall reports whether the last known terminal size cannot fit the board.
func (m Model) TooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+chromeRows
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// State returns the counters after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.TooSmall() {
		msg := tooSmallStyle.Render("Window too small") + "\n" +
			fmt.Sprintf("need %dx%d, have %dx%d",
				m.screen.Width(), m.screen.Height()+chromeRows, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	// Render game to screen buffer, then frame it
	if err := m.game.Render(m.screen); err != nil {
		m.logger.Error("render failed", "err", err)
	}
	m.screen.SetForeground(m.config.Palette.Border)
	m.screen.DrawBox(core.NewRect(0, 0, m.screen.Width(), m.screen.Height()))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud(),
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// hud returns the status line shown above the board.
func (m Model) hud() string {
	s := m.gameState
	return hudStyle.Render(fmt.Sprintf("%s  length %d  eaten %d  resets %d  %d ticks/s",
		m.game.Title(), s.Length, s.Eaten, s.Resets, m.config.TickRate))
}

// Run starts the Bubble Tea program for the given game on the local terminal.
// It returns when the user quits, ctx is cancelled or the game fails.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
