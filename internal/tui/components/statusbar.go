package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and status on the right. A non-empty flash replaces the status in the
// accent color.
func RenderStatusBar(width int, status, flash string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [e]ngine  [+/-]monthly  [[/]]initial  [g/G]oal  [p]lan  [s]ave  [?]help  [q]uit"
	right := status + " "
	if flash != "" {
		right = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Render(flash) + " "
	}

	if lipgloss.Width(left)+lipgloss.Width(right) >= width {
		left = " [?]help  [q]uit"
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	spacer := lipgloss.NewStyle().Background(t.Surface).Width(padding).Render("")

	return style.Render(left + spacer + right)
}
