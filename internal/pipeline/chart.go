package pipeline

import (
	"math"

	"github.com/theirongolddev/flightpath/internal/model"
)

// MaxChartPoints is the sampling target; the forced final point may add one.
const MaxChartPoints = 200

// ChartDateLayout formats chart X labels, e.g. "Jan 2030".
const ChartDateLayout = "Jan 2006"

// SampleStride returns max(1, floor(n/MaxChartPoints)).
func SampleStride(n int) int {
	return max(1, n/MaxChartPoints)
}

// SampleChart keeps every stride-th timeline point plus the last one, so the
// right edge of the chart is always the true final value. Wealth is rounded
// to whole currency units and the goal is attached to every point.
func SampleChart(timeline []model.TimelinePoint, goal float64) []model.ChartPoint {
	stride := SampleStride(len(timeline))
	last := len(timeline) - 1

	out := make([]model.ChartPoint, 0, len(timeline)/stride+1)
	for i, pt := range timeline {
		if i%stride != 0 && i != last {
			continue
		}
		out = append(out, model.ChartPoint{
			Label:          pt.Date.Format(ChartDateLayout),
			PortfolioValue: math.Round(pt.ActualWealth),
			Goal:           goal,
			Date:           pt.Date,
		})
	}
	return out
}

// ChartValues extracts the portfolio series for sparklines and bar charts.
func ChartValues(points []model.ChartPoint) []float64 {
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.PortfolioValue
	}
	return vals
}

// ChartLabels extracts the X labels.
func ChartLabels(points []model.ChartPoint) []string {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	return labels
}
