package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

// EngineTab is one selectable return profile in the header.
type EngineTab struct {
	Name  string
	Label string
}

// RenderEngineBar renders the engine selector with the active profile
// highlighted. Names that don't fit in width are dropped from the right,
// except the active one.
func RenderEngineBar(tabs []EngineTab, active string, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)

	sepStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	rowStyle := lipgloss.NewStyle().Background(t.Surface).Width(width)

	var parts []string
	used := 0
	for _, tab := range tabs {
		var rendered string
		if tab.Name == active {
			rendered = activeStyle.Render(tab.Label)
		} else {
			rendered = inactiveStyle.Render(tab.Label)
		}
		w := lipgloss.Width(rendered) + 1
		if used+w > width && tab.Name != active {
			continue
		}
		used += w
		parts = append(parts, rendered)
	}

	return rowStyle.Render(strings.Join(parts, sepStyle.Render("│")))
}

// EngineTabAtX returns the index of the tab under column x, or -1.
// Only meaningful when every tab fits.
func EngineTabAtX(tabs []EngineTab, x int) int {
	pos := 0
	for i, tab := range tabs {
		w := lipgloss.Width(tab.Label) + 2 // horizontal padding
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1 // separator
	}
	return -1
}
