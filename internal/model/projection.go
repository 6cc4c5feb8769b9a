// Package model defines the domain types shared by the projection engine,
// the derivation pipeline and the renderers.
package model

import "time"

// EngineType selects the growth profile a projection is computed with.
// Values are resolved by the engine package; everything else treats them as opaque.
type EngineType string

// DefaultHorizonYears is the projection horizon when none is configured.
const DefaultHorizonYears = 50

// MonthsPerYear is used to convert horizons and goal attainment.
const MonthsPerYear = 12

// Params are the inputs of a single projection.
// The struct is comparable and hashable so it can key a memo cache.
type Params struct {
	InitialInvestment float64    `json:"initial_investment"`
	MonthlyInvestment float64    `json:"monthly_investment"`
	Engine            EngineType `json:"engine"`
	Goal              float64    `json:"goal"`
	HorizonYears      int        `json:"horizon_years"`
}

// Horizon returns the configured horizon, falling back to the default.
func (p Params) Horizon() int {
	if p.HorizonYears <= 0 {
		return DefaultHorizonYears
	}
	return p.HorizonYears
}

// TotalMonths is the number of simulated months over the horizon.
func (p Params) TotalMonths() int {
	return p.Horizon() * MonthsPerYear
}

// TimelinePoint is one simulated month.
type TimelinePoint struct {
	Date           time.Time `json:"date"`
	ActualWealth   float64   `json:"actual_wealth"`
	ExpectedWealth float64   `json:"expected_wealth"` // same engine without the market cycle
	Contributed    float64   `json:"contributed"`     // initial + contributions so far
}

// Projection is the engine output for one parameter set. It is never
// mutated after the engine returns it.
type Projection struct {
	Params            Params          `json:"params"`
	InitialInvestment float64         `json:"initial_investment"`
	MonthlyInvestment float64         `json:"monthly_investment"`
	FinalValue        float64         `json:"final_value"`
	YearsToGoal       *float64        `json:"years_to_goal"` // nil: goal not reached within the horizon
	Timeline          []TimelinePoint `json:"timeline"`
}

// GoalReached reports whether the goal was hit inside the horizon.
func (p Projection) GoalReached() bool {
	return p.YearsToGoal != nil
}
