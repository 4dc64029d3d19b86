package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// cellColors is the style key of a cell.
type cellColors struct {
	fg, bg core.RGB
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// The renderer decides the color profile, so SSH sessions get their own.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	styles := make(map[cellColors]lipgloss.Style)
	styleFor := func(k cellColors) lipgloss.Style {
		st, ok := styles[k]
		if !ok {
			st = r.NewStyle().
				Foreground(lipgloss.Color(k.fg.Hex())).
				Background(lipgloss.Color(k.bg.Hex()))
			styles[k] = st
		}
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			key := cellColors{start.Fg, start.Bg}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(key).Render(run.String()))
		}
	}
	return sb.String()
}
