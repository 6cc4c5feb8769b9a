package tui

import (
	"fmt"

	"github.com/theirongolddev/flightpath/internal/cli"
	"github.com/theirongolddev/flightpath/internal/model"
	"github.com/theirongolddev/flightpath/internal/pipeline"
	"github.com/theirongolddev/flightpath/internal/tui/components"
)

// MetricCards builds the four summary cards: time to goal, money invested,
// income gained and total value.
func MetricCards(m model.Metrics) []components.Metric {
	goalHint := "Beyond horizon"
	goalTone := components.ToneWarn
	if m.HasTargetDate() {
		goalHint = m.TargetDate.Format(pipeline.TargetDateLayout)
		goalTone = components.ToneNeutral
	}

	incomeTone := components.TonePositive
	if m.IncomeGained.IsNegative() {
		incomeTone = components.ToneNegative
	}

	return []components.Metric{
		{
			Label: "Time to Goal",
			Value: m.TimeToGoal,
			Unit:  "yrs",
			Hint:  goalHint,
			Tone:  goalTone,
		},
		{
			Label: "Money Invested",
			Value: cli.FormatMoneyShortDecimal(m.MoneyInvested),
			Note:  cli.FormatMoneyDecimal(m.MoneyInvested),
			Hint:  "Principal contributed",
		},
		{
			Label: "Income Gained",
			Value: cli.FormatMoneyShortDecimal(m.IncomeGained),
			Note:  cli.FormatGrowth(m.MonthlyGrowth) + "% monthly growth",
			Hint:  cli.FormatMoneyDecimal(m.IncomeGained),
			Tone:  incomeTone,
		},
		{
			Label: "Total Value",
			Value: cli.FormatMoneyShort(m.FinalValue),
			Note:  fmt.Sprintf("After %d years", m.HorizonYears),
			Hint:  cli.FormatMoney(m.FinalValue),
		},
	}
}
