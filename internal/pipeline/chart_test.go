package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/flightpath/internal/model"
)

func timeline(n int) []model.TimelinePoint {
	start := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.TimelinePoint, n)
	for i := range out {
		out[i] = model.TimelinePoint{
			Date:           start.AddDate(0, i, 0),
			ActualWealth:   float64(i)*100 + 0.6,
			ExpectedWealth: float64(i) * 100,
		}
	}
	return out
}

func TestSampleStride(t *testing.T) {
	assert.Equal(t, 1, SampleStride(0))
	assert.Equal(t, 1, SampleStride(199))
	assert.Equal(t, 1, SampleStride(399))
	assert.Equal(t, 2, SampleStride(400))
	assert.Equal(t, 3, SampleStride(600))
}

func TestSampleChart_Downsamples(t *testing.T) {
	tl := timeline(600)
	pts := SampleChart(tl, 1_000_000)

	require.Len(t, pts, 201)
	assert.Equal(t, "Jan 2030", pts[0].Label)
	assert.Equal(t, "Apr 2030", pts[1].Label, "stride 3")

	last := pts[len(pts)-1]
	assert.Equal(t, tl[599].Date, last.Date)
	assert.Equal(t, 59901.0, last.PortfolioValue)
	for _, p := range pts {
		assert.Equal(t, 1_000_000.0, p.Goal)
	}
}

func TestSampleChart_LastPointNotDuplicated(t *testing.T) {
	// 401 points, stride 2: index 400 is already a stride hit.
	pts := SampleChart(timeline(401), 5)
	assert.Len(t, pts, 201)
	assert.NotEqual(t, pts[len(pts)-2].Date, pts[len(pts)-1].Date)
}

func TestSampleChart_ShortTimelineKept(t *testing.T) {
	for _, n := range []int{1, 12, 150, 200} {
		tl := timeline(n)
		pts := SampleChart(tl, 10)
		require.Len(t, pts, n)
		for i, p := range pts {
			assert.Equal(t, tl[i].Date, p.Date)
		}
	}
}

func TestSampleChart_Empty(t *testing.T) {
	pts := SampleChart(nil, 10)
	assert.NotNil(t, pts)
	assert.Empty(t, pts)
}

func TestSampleChart_RoundsWealth(t *testing.T) {
	pts := SampleChart([]model.TimelinePoint{
		{Date: time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC), ActualWealth: 1234.5},
		{Date: time.Date(2031, time.April, 1, 0, 0, 0, 0, time.UTC), ActualWealth: 1234.49},
	}, 0)
	assert.Equal(t, []float64{1235, 1234}, ChartValues(pts))
	assert.Equal(t, []string{"Mar 2031", "Apr 2031"}, ChartLabels(pts))
}
