// Package pipeline derives display metrics and chart series from projections.
package pipeline

import (
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/flightpath/internal/model"
)

// TargetDateLayout formats the goal date under the time-to-goal card.
const TargetDateLayout = "Jan 2006"

// DeriveMetrics computes the summary card values for a projection.
// It does not modify p. now anchors the target date.
func DeriveMetrics(p model.Projection, now time.Time) model.Metrics {
	months := p.Params.TotalMonths()

	invested := MoneyInvested(p.InitialInvestment, p.MonthlyInvestment, months)
	gained := toDecimal(p.FinalValue).Sub(invested)
	growth, defined := MonthlyGrowth(p.FinalValue, invested.InexactFloat64(), months)

	m := model.Metrics{
		TotalMonths:   months,
		HorizonYears:  p.Params.Horizon(),
		MoneyInvested: invested,
		IncomeGained:  gained,
		FinalValue:    p.FinalValue,
		MonthlyGrowth: growth,
		GrowthDefined: defined,
		GoalProgress:  goalProgress(p.FinalValue, p.Params.Goal),
	}

	if p.YearsToGoal != nil {
		years := *p.YearsToGoal
		y := years
		m.YearsToGoal = &y
		m.TimeToGoal = strconv.FormatFloat(roundTenth(years), 'f', 1, 64)
		m.TargetDate = now.AddDate(int(math.Ceil(years)), 0, 0)
	} else {
		m.TimeToGoal = strconv.Itoa(m.HorizonYears) + "+"
	}

	return m
}

// MoneyInvested is initial + monthly*months, computed in decimal so the
// result is exact for any cent-denominated inputs.
func MoneyInvested(initial, monthly float64, months int) decimal.Decimal {
	return toDecimal(initial).Add(toDecimal(monthly).Mul(decimal.NewFromInt(int64(months))))
}

// MonthlyGrowth inverts compound growth: (final/invested)^(1/months) - 1,
// as a percentage. A non-positive investment base counts as a total return
// of 1, and a non-positive total return yields 0. The second result is false
// whenever one of those guards replaced the real rate.
func MonthlyGrowth(final, invested float64, months int) (float64, bool) {
	defined := true
	totalReturn := 1.0
	if invested > 0 {
		totalReturn = final / invested
	} else {
		defined = false
	}
	if totalReturn <= 0 || months <= 0 || math.IsNaN(totalReturn) || math.IsInf(totalReturn, 0) {
		return 0, false
	}
	return (math.Pow(totalReturn, 1/float64(months)) - 1) * 100, defined
}

// roundTenth rounds half away from zero; years are m/12 so .x5 ties are common
// and FormatFloat alone would round them to even.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func goalProgress(final, goal float64) float64 {
	if goal <= 0 || final <= 0 {
		return 0
	}
	return math.Min(final/goal, 1)
}

// toDecimal maps non-finite values to zero; NewFromFloat panics on them.
func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
