package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

// GoalBar renders labeled progress toward the goal, e.g.
// "Goal  ██████░░░░  62%  $620k of $1000k".
func GoalBar(label string, pct float64, detail string, labelW, barWidth int) string {
	t := theme.Active

	pct = max(0, min(pct, 1))

	fill := t.Portfolio
	pctColor := t.TextPrimary
	if pct >= 1 {
		fill = t.Gain
		pctColor = t.Gain
	}

	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(max(barWidth, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(pctColor).Background(t.Surface).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100)) +
		spaceStyle.Render("  ") +
		detailStyle.Render(detail)
}
