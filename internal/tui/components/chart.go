package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = max(0, min(idx, len(blocks)-1))
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// WealthChart renders the portfolio series as a filled area chart with a
// dashed horizontal goal line. values and labels are resampled to fit the
// plot width; the last value is always the right-most column.
func WealthChart(values []float64, goal float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 20 || height < 4 {
		return Sparkline(values, theme.Active.Portfolio)
	}

	t := theme.Active

	peak := goal
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	// Y-axis: nice tick step, doubled until the ticks fit
	tickStep := chartTickStep(peak)
	maxIntervals := max(height/2, 2)
	for int(math.Ceil(peak/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(peak/tickStep) * tickStep
	numIntervals := max(int(math.Round(ceiling/tickStep)), 1)
	rowsPerTick := max(height/numIntervals, 1)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(len(FormatAxisMoney(ceiling))+1, 5)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = FormatAxisMoney(tickStep * float64(i))
	}

	chartW := max(width-yLabelW-1, 5)
	cols, colLabels := resample(values, labels, chartW)

	goalRow := 0
	if goal > 0 {
		goalRow = max(1, int(math.Ceil(goal/ceiling*float64(chartH))))
	}

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	areaStyle := lipgloss.NewStyle().Foreground(t.Portfolio).Background(t.Surface)
	reachedStyle := lipgloss.NewStyle().Foreground(t.Gain).Background(t.Surface)
	goalStyle := lipgloss.NewStyle().Foreground(t.Goal).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for _, v := range cols {
			style := areaStyle
			if goal > 0 && v >= goal {
				style = reachedStyle
			}
			switch {
			case v >= rowTop:
				b.WriteString(style.Render("█"))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = max(1, min(idx, 8))
				b.WriteString(style.Render(string(blocks[idx])))
			case row == goalRow:
				b.WriteString(goalStyle.Render("┄"))
			default:
				b.WriteString(blankStyle.Render(" "))
			}
		}
		b.WriteString("\n")
	}

	// X-axis line with 0 label
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "$0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", len(cols))))

	if axis := xAxisLabels(colLabels, len(cols)); axis != "" {
		b.WriteString("\n")
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(axis))
	}

	return b.String()
}

// resample picks n evenly spaced columns from values, keeping both ends.
func resample(values []float64, labels []string, n int) ([]float64, []string) {
	if len(values) <= n {
		return values, labels
	}
	withLabels := len(labels) == len(values)

	cols := make([]float64, n)
	var colLabels []string
	if withLabels {
		colLabels = make([]string, n)
	}
	for i := range cols {
		src := i * (len(values) - 1) / max(n-1, 1)
		cols[i] = values[src]
		if withLabels {
			colLabels[i] = labels[src]
		}
	}
	return cols, colLabels
}

// xAxisLabels spaces labels under their columns, always showing the first
// and last when they fit.
func xAxisLabels(labels []string, axisLen int) string {
	if len(labels) == 0 || axisLen <= 0 {
		return ""
	}

	buf := []byte(strings.Repeat(" ", axisLen))
	const minGap = 4

	place := func(pos int, lbl string) bool {
		end := pos + len(lbl)
		if pos < 0 || end > axisLen {
			return false
		}
		copy(buf[pos:end], lbl)
		return true
	}

	lastEnd := -minGap
	n := len(labels)
	labelW := len(labels[0])
	step := max(1, n*(labelW+minGap)/axisLen)

	// reserve room for the final label
	finalPos := axisLen - len(labels[n-1])
	for i := 0; i < n; i += step {
		if i >= lastEnd+minGap && i+len(labels[i]) <= finalPos-minGap {
			if place(i, labels[i]) {
				lastEnd = i + len(labels[i])
			}
		}
	}
	place(finalPos, labels[n-1])

	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// FormatAxisMoney formats a dollar value for axis ticks, e.g. "$1.5M".
func FormatAxisMoney(v float64) string {
	return "$" + formatChartLabel(v)
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
