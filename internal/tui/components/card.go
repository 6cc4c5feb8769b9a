// Package components provides reusable TUI widgets for the flightpath dashboard.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

// Tone colors a metric card value.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
	ToneWarn
)

// Metric is one summary card: a headline value with optional unit and
// two lines of supporting text.
type Metric struct {
	Label string
	Value string
	Unit  string // rendered dim after the value, e.g. "yrs"
	Note  string // secondary line, e.g. "$310,000 total"
	Hint  string // tertiary line, e.g. "Oct 2039"
	Tone  Tone
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

func toneColor(t theme.Theme, tone Tone) lipgloss.Color {
	switch tone {
	case TonePositive:
		return t.Gain
	case ToneNegative:
		return t.Loss
	case ToneWarn:
		return t.Warn
	default:
		return t.TextPrimary
	}
}

// MetricCard renders m in a bordered card. outerWidth includes the border.
// Every card has the same height so a row of them lines up.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	contentWidth := max(outerWidth-2, 10)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(toneColor(t, m.Tone)).Background(t.Surface).Bold(true)
	unitStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	value := valueStyle.Render(m.Value)
	if m.Unit != "" {
		value += unitStyle.Render(" " + m.Unit)
	}

	content := labelStyle.Render(m.Label) + "\n" +
		value + "\n" +
		noteStyle.Render(m.Note) + "\n" +
		hintStyle.Render(m.Hint)

	return cardStyle.Render(content)
}

// MetricCardRow renders metric cards side by side.
// totalWidth is the full row width; cards sum to exactly that.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))

	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}

	return CardRow(rendered)
}

// MetricGrid lays out metrics in rows of perRow cards.
func MetricGrid(metrics []Metric, perRow, totalWidth int) string {
	if perRow < 1 {
		perRow = 1
	}
	var rows []string
	for i := 0; i < len(metrics); i += perRow {
		end := min(i+perRow, len(metrics))
		rows = append(rows, MetricCardRow(metrics[i:end], totalWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := max(outerWidth-2, 10)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered cards horizontally, padding shorter cards with
// the background color so the row is a filled rectangle.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	t := theme.Active

	tallest := 0
	for _, c := range cards {
		tallest = max(tallest, lipgloss.Height(c))
	}

	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.Place(lipgloss.Width(c), tallest, lipgloss.Left, lipgloss.Top, c,
			lipgloss.WithWhitespaceBackground(t.Background))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}
