// Package engine computes deterministic wealth projections.
//
// Each month the contribution is added first and the month's rate is applied
// after. The actual path follows the profile's market cycle; the expected
// path compounds at the smooth monthly rate.
package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/theirongolddev/flightpath/internal/model"
)

// DefaultEngine is used when no engine is selected.
const DefaultEngine = "growth"

// MaxHorizonYears bounds the timeline length.
const MaxHorizonYears = 100

var (
	ErrInvalidAmount  = errors.New("amount must be a finite, non-negative number")
	ErrInvalidGoal    = errors.New("goal must be a finite, positive number")
	ErrInvalidHorizon = errors.New("horizon out of range")
	ErrUnknownEngine  = errors.New("unknown engine")
	ErrInvalidProfile = errors.New("invalid engine profile")
	ErrNonFinite      = errors.New("projection overflowed")
)

// Validate checks params without resolving the engine.
func Validate(p model.Params) error {
	if !validAmount(p.InitialInvestment) {
		return fmt.Errorf("initial investment %v: %w", p.InitialInvestment, ErrInvalidAmount)
	}
	if !validAmount(p.MonthlyInvestment) {
		return fmt.Errorf("monthly investment %v: %w", p.MonthlyInvestment, ErrInvalidAmount)
	}
	if math.IsNaN(p.Goal) || math.IsInf(p.Goal, 0) || p.Goal <= 0 {
		return fmt.Errorf("goal %v: %w", p.Goal, ErrInvalidGoal)
	}
	if p.HorizonYears < 0 || p.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("%d years (max %d): %w", p.HorizonYears, MaxHorizonYears, ErrInvalidHorizon)
	}
	return nil
}

func validAmount(v float64) bool {
	return finite(v) && v >= 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Project runs a projection against the default catalog.
func Project(p model.Params, start time.Time) (model.Projection, error) {
	return Default.Project(p, start)
}

// Project computes one point per month over the horizon. Point dates start
// one month after the first day of start's month, in UTC.
func (c *Catalog) Project(p model.Params, start time.Time) (model.Projection, error) {
	if err := Validate(p); err != nil {
		return model.Projection{}, err
	}
	prof, ok := c.Lookup(string(p.Engine))
	if !ok {
		return model.Projection{}, fmt.Errorf("%w: %q", ErrUnknownEngine, p.Engine)
	}

	months := p.TotalMonths()
	base := prof.MonthlyRate()
	origin := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)

	actual := p.InitialInvestment
	expected := p.InitialInvestment
	contributed := p.InitialInvestment

	timeline := make([]model.TimelinePoint, months)
	var yearsToGoal *float64

	for m := 1; m <= months; m++ {
		actual += p.MonthlyInvestment
		expected += p.MonthlyInvestment
		contributed += p.MonthlyInvestment

		actual *= 1 + prof.rateAt(m)
		expected *= 1 + base
		if !finite(actual) || !finite(expected) || !finite(contributed) {
			return model.Projection{}, fmt.Errorf("month %d: %w", m, ErrNonFinite)
		}

		timeline[m-1] = model.TimelinePoint{
			Date:           origin.AddDate(0, m, 0),
			ActualWealth:   actual,
			ExpectedWealth: expected,
			Contributed:    contributed,
		}

		if yearsToGoal == nil && actual >= p.Goal {
			y := float64(m) / model.MonthsPerYear
			yearsToGoal = &y
		}
	}

	p.Engine = model.EngineType(prof.Name)
	return model.Projection{
		Params:            p,
		InitialInvestment: p.InitialInvestment,
		MonthlyInvestment: p.MonthlyInvestment,
		FinalValue:        actual,
		YearsToGoal:       yearsToGoal,
		Timeline:          timeline,
	}, nil
}
