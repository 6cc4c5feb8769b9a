package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/flightpath/internal/model"
)

var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func projection(initial, monthly, final float64, years *float64) model.Projection {
	return model.Projection{
		Params: model.Params{
			InitialInvestment: initial,
			MonthlyInvestment: monthly,
			Goal:              1_000_000,
		},
		InitialInvestment: initial,
		MonthlyInvestment: monthly,
		FinalValue:        final,
		YearsToGoal:       years,
	}
}

func f64(v float64) *float64 { return &v }

func TestDeriveMetrics_ReferenceExample(t *testing.T) {
	m := DeriveMetrics(projection(10_000, 500, 900_000, f64(37.5)), now)

	assert.Equal(t, 600, m.TotalMonths)
	assert.True(t, m.MoneyInvested.Equal(decimal.NewFromInt(310_000)), "invested = %s", m.MoneyInvested)
	assert.True(t, m.IncomeGained.Equal(decimal.NewFromInt(590_000)), "gained = %s", m.IncomeGained)
	assert.InDelta(t, 0.1778, m.MonthlyGrowth, 0.0005)
	assert.True(t, m.GrowthDefined)
	assert.Equal(t, 0.9, m.GoalProgress)
}

func TestMoneyInvested_Exact(t *testing.T) {
	tests := []struct {
		initial, monthly float64
		want             string
	}{
		{0, 0, "0"},
		{10_000, 500, "310000"},
		{1234.56, 78.9, "48574.56"},
		{0.1, 0.2, "120.1"},
		{1e9, 1e6, "601000000000"},
	}
	for _, tt := range tests {
		got := MoneyInvested(tt.initial, tt.monthly, 600)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "I=%v M=%v: got %s want %s", tt.initial, tt.monthly, got, tt.want)
	}
}

func TestDeriveMetrics_NegativeIncome(t *testing.T) {
	m := DeriveMetrics(projection(10_000, 100, 20_000, nil), now)
	// invested 70,000
	assert.True(t, m.IncomeGained.Equal(decimal.NewFromInt(-50_000)), "gained = %s", m.IncomeGained)
	assert.Negative(t, m.MonthlyGrowth)
	assert.True(t, m.GrowthDefined)
}

func TestMonthlyGrowth_Guards(t *testing.T) {
	tests := []struct {
		name            string
		final, invested float64
		months          int
	}{
		{"nothing invested", 0, 0, 600},
		{"nothing invested but value", 5_000, 0, 600},
		{"negative investment base", 100, -10, 600},
		{"wiped out", 0, 1000, 600},
		{"negative final value", -50, 1000, 600},
		{"no months", 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, defined := MonthlyGrowth(tt.final, tt.invested, tt.months)
			assert.Equal(t, 0.0, g)
			assert.False(t, math.IsNaN(g))
			assert.False(t, defined)
		})
	}
}

func TestDeriveMetrics_ZeroInvestment(t *testing.T) {
	m := DeriveMetrics(projection(0, 0, 0, nil), now)
	assert.True(t, m.MoneyInvested.IsZero())
	assert.Equal(t, 0.0, m.MonthlyGrowth)
	assert.False(t, m.GrowthDefined)
	assert.Equal(t, 0.0, m.GoalProgress)
}

func TestDeriveMetrics_TimeToGoal(t *testing.T) {
	t.Run("reached", func(t *testing.T) {
		m := DeriveMetrics(projection(1, 1, 1, f64(147.0/12)), now)
		require.NotNil(t, m.YearsToGoal)
		assert.Equal(t, "12.3", m.TimeToGoal, "halves round up")
		require.True(t, m.HasTargetDate())
		assert.Equal(t, time.Date(2039, time.October, 14, 12, 0, 0, 0, time.UTC), m.TargetDate)
	})

	t.Run("whole years", func(t *testing.T) {
		m := DeriveMetrics(projection(1, 1, 1, f64(3)), now)
		assert.Equal(t, "3.0", m.TimeToGoal)
		assert.Equal(t, 2029, m.TargetDate.Year())
	})

	t.Run("horizon exceeded", func(t *testing.T) {
		m := DeriveMetrics(projection(1, 1, 1, nil), now)
		assert.Nil(t, m.YearsToGoal)
		assert.Equal(t, "50+", m.TimeToGoal)
		assert.False(t, m.HasTargetDate())
	})

	t.Run("configured horizon", func(t *testing.T) {
		p := projection(1, 1, 1, nil)
		p.Params.HorizonYears = 30
		m := DeriveMetrics(p, now)
		assert.Equal(t, "30+", m.TimeToGoal)
		assert.Equal(t, 360, m.TotalMonths)
	})
}

func TestDeriveMetrics_DoesNotMutateInput(t *testing.T) {
	years := 10.0
	p := projection(10_000, 500, 900_000, &years)
	before := p

	m := DeriveMetrics(p, now)
	*m.YearsToGoal = 99

	assert.Equal(t, before, p)
	assert.Equal(t, 10.0, years)
}
