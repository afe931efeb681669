package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/tilemine/tilemine/internal/core"
)

// styleKey identifies a foreground/background color pair. Empty strings
// mean the terminal default.
type styleKey struct {
	fg string
	bg string
}

var (
	styleMu    sync.Mutex
	styleCache = map[styleKey]lipgloss.Style{}
)

// styleFor returns a cached lipgloss style for the cell's colors.
// Styles are shared across sessions, so the cache is guarded.
func styleFor(key styleKey) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	if style, ok := styleCache[key]; ok {
		return style
	}

	style := lipgloss.NewStyle()
	if key.fg != "" {
		style = style.Foreground(lipgloss.Color(key.fg))
	}
	if key.bg != "" {
		style = style.Background(lipgloss.Color(key.bg))
	}
	styleCache[key] = style
	return style
}

func cellKey(c core.Cell) styleKey {
	var key styleKey
	if c.Fg.Valid {
		key.fg = c.Fg.Hex()
	}
	if c.Bg.Valid {
		key.bg = c.Bg.Hex()
	}
	return key
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*8 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			startKey := cellKey(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cellKey(cell) != startKey {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startKey).Render(run.String()))
		}
	}
	return sb.String()
}
