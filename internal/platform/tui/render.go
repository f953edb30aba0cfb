package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rainshield/internal/core"
)

var (
	stylesMu sync.RWMutex
	styles   = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
)

// styleFor returns the cached foreground style for c.
func styleFor(c core.Color) lipgloss.Style {
	stylesMu.RLock()
	s, ok := styles[c]
	stylesMu.RUnlock()
	if ok {
		return s
	}

	s = lipgloss.NewStyle()
	if _, _, _, valid := c.Components(); valid {
		s = s.Foreground(lipgloss.Color(string(c)))
	}

	stylesMu.Lock()
	styles[c] = s
	stylesMu.Unlock()
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
