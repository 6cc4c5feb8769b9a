package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/flightpath/internal/cli"
	"github.com/theirongolddev/flightpath/internal/pipeline"
	"github.com/theirongolddev/flightpath/internal/tui/components"
	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

// headerEngineRow is the screen row of the engine selector.
const headerEngineRow = 1

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.planForm != nil {
		return a.viewPlanForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  flightpath needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewPlanForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := titleStyle.Render("◈ Edit plan") + "\n\n" +
		a.planForm.View() + "\n" +
		hintStyle.Render("esc to cancel")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Goal).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Plan", []struct{ key, desc string }{
			{"e E  ← →", "Next / previous engine"},
			{"+ -", fmt.Sprintf("Monthly investment ±$%d", MonthlyStep)},
			{"] [", fmt.Sprintf("Initial investment ±%s", cli.FormatMoney(InitialStep))},
			{"g G", fmt.Sprintf("Goal ±%.0f%%", GoalFactor*100)},
			{"p", "Edit plan"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"s", "Save plan to config"},
			{"t", "Cycle theme"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader(w)

	status := fmt.Sprintf("%s/mo · %s start", cli.FormatMoney(a.params.MonthlyInvestment), cli.FormatMoney(a.params.InitialInvestment))
	statusBar := components.RenderStatusBar(w, status, a.flash)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minChartHeight)

	var content string
	if a.err != nil {
		content = components.ContentCard("Projection error", lipgloss.NewStyle().Foreground(t.Loss).Render(a.err.Error()), cw)
	} else {
		content = a.renderDashboard(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderHeader(w int) string {
	t := theme.Active

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	rowStyle := lipgloss.NewStyle().Background(t.Surface).Width(w)

	title := rowStyle.Render(logoStyle.Render(" ◈ flightpath") +
		subStyle.Render(" · goal "+cli.FormatMoney(a.params.Goal)))

	return title + "\n" + components.RenderEngineBar(a.engineTabs(), string(a.params.Engine), w)
}

func (a App) renderDashboard(cw, h int) string {
	perRow := 4
	if a.isCompactLayout() {
		perRow = 2
	}
	cards := components.MetricGrid(MetricCards(a.dash.Metrics), perRow, cw)

	m := a.dash.Metrics
	goalDetail := fmt.Sprintf("%s of %s", cli.FormatMoneyShort(m.FinalValue), cli.FormatMoneyShort(a.params.Goal))
	barW := max(cw-40, 10)
	goal := components.ContentCard("", components.GoalBar("Goal", m.GoalProgress, goalDetail, 5, barW), cw)

	// chart card: border (2) + title (1) + axis rows (2)
	chartH := max(h-lipgloss.Height(cards)-lipgloss.Height(goal)-5, minChartHeight)
	chart := components.WealthChart(
		pipeline.ChartValues(a.dash.Chart),
		a.params.Goal,
		pipeline.ChartLabels(a.dash.Chart),
		components.CardInnerWidth(cw),
		chartH,
	)

	profile, _ := a.catalog.Lookup(string(a.params.Engine))
	title := fmt.Sprintf("Flight Path · %s · %s/yr", profile.Label, cli.FormatRate(profile.AnnualReturn))
	chartCard := components.ContentCard(title, chart, cw)

	return lipgloss.JoinVertical(lipgloss.Left, cards, chartCard, goal)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
