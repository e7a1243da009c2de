package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleFor returns a truecolor lipgloss style for a cell color pair.
func styleFor(cache map[colorPair]lipgloss.Style, p colorPair) lipgloss.Style {
	if style, ok := cache[p]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fg.Hex())).
		Background(lipgloss.Color(p.bg.Hex()))
	cache[p] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[colorPair]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.Fg, cell.Bg}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(styles, start).Render(run.String()))
		}
	}
	return sb.String()
}
