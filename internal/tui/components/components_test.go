package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	got := LayoutRow(10, 3)
	if got[0] != 4 || got[1] != 3 || got[2] != 3 {
		t.Fatalf("LayoutRow(10, 3) = %v", got)
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("n=0 should return nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Time to Goal", Value: "12.3", Unit: "yrs", Hint: "Oct 2039"},
		{Label: "Money Invested", Value: "$310k", Note: "$310,000 total"},
		{Label: "Income Gained", Value: "$590k", Note: "0.18% monthly growth", Tone: TonePositive},
		{Label: "Total Value", Value: "$900k", Note: "After 50 years"},
	}, 100)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 100 {
			t.Errorf("line %d width = %d, want 100", i, w)
		}
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("Line %d has NO ANSI codes - padding is unstyled", i)
		}
	}
}

func TestWealthChartShape(t *testing.T) {
	values := make([]float64, 201)
	labels := make([]string, 201)
	for i := range values {
		values[i] = float64(i) * 10_000
		labels[i] = "Jan 2030"
	}
	labels[200] = "Jan 2080"

	out := WealthChart(values, 1_000_000, labels, 80, 10)
	lines := strings.Split(out, "\n")
	if len(lines) < 10 {
		t.Fatalf("chart has %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "┄") {
		t.Error("goal line missing")
	}
	if !strings.Contains(lines[len(lines)-1], "Jan 2080") {
		t.Errorf("last label missing: %q", lines[len(lines)-1])
	}
	for i, line := range lines[:len(lines)-1] {
		if w := lipgloss.Width(line); w > 80 {
			t.Errorf("line %d width %d exceeds 80", i, w)
		}
	}
}

func TestWealthChartTinyFallsBack(t *testing.T) {
	out := WealthChart([]float64{1, 2, 3}, 2, nil, 10, 2)
	if strings.Contains(out, "\n") {
		t.Errorf("expected a single-line sparkline, got %q", out)
	}
	if WealthChart(nil, 1, nil, 80, 10) != "" {
		t.Error("empty series should render empty")
	}
}

func TestResampleKeepsEnds(t *testing.T) {
	vals := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	cols, _ := resample(vals, nil, 4)
	if len(cols) != 4 || cols[0] != 0 || cols[3] != 10 {
		t.Errorf("resample = %v", cols)
	}
}

func TestFormatAxisMoney(t *testing.T) {
	cases := map[float64]string{
		1_000_000: "$1M",
		1_500_000: "$1.5M",
		250_000:   "$250k",
		2e9:       "$2B",
	}
	for in, want := range cases {
		if got := FormatAxisMoney(in); got != want {
			t.Errorf("FormatAxisMoney(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestEngineTabAtX(t *testing.T) {
	tabs := []EngineTab{{Name: "steady", Label: "Steady"}, {Name: "growth", Label: "Growth"}}
	// "Steady" occupies 0..7, separator at 8, "Growth" 9..16
	if got := EngineTabAtX(tabs, 3); got != 0 {
		t.Errorf("x=3 -> %d", got)
	}
	if got := EngineTabAtX(tabs, 10); got != 1 {
		t.Errorf("x=10 -> %d", got)
	}
	if got := EngineTabAtX(tabs, 40); got != -1 {
		t.Errorf("x=40 -> %d", got)
	}
}
