package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metrics holds the derived summary values shown on the dashboard cards.
type Metrics struct {
	TotalMonths  int `json:"total_months"`
	HorizonYears int `json:"horizon_years"`

	// Time to goal
	YearsToGoal *float64  `json:"years_to_goal"`
	TimeToGoal  string    `json:"time_to_goal"` // "12.3" or "50+"
	TargetDate  time.Time `json:"target_date,omitzero"`

	MoneyInvested decimal.Decimal `json:"money_invested"`
	IncomeGained  decimal.Decimal `json:"income_gained"`
	FinalValue    float64         `json:"final_value"`

	// MonthlyGrowth is a percentage (0.18 means 0.18% per month).
	MonthlyGrowth float64 `json:"monthly_growth"`
	// GrowthDefined is false when the zero-guard replaced the compound rate.
	GrowthDefined bool `json:"growth_defined"`

	GoalProgress float64 `json:"goal_progress"` // 0-1, final value against goal
}

// HasTargetDate reports whether a goal date was derived.
func (m Metrics) HasTargetDate() bool {
	return !m.TargetDate.IsZero()
}

// ChartPoint is one downsampled point fed to a chart.
type ChartPoint struct {
	Label          string    `json:"date"`
	PortfolioValue float64   `json:"Portfolio Value"`
	Goal           float64   `json:"Goal"`
	Date           time.Time `json:"-"`
}
