package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/flightpath/internal/model"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "high-growth", NormalizeName(" High_Growth "))
	assert.Equal(t, "high-growth", NormalizeName("high growth"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestLookup_Aliases(t *testing.T) {
	p, ok := Default.Lookup("Conservative")
	require.True(t, ok)
	assert.Equal(t, "steady", p.Name)

	p, ok = Default.Lookup("")
	require.True(t, ok)
	assert.Equal(t, DefaultEngine, p.Name)

	_, ok = Default.Lookup("crypto-casino")
	assert.False(t, ok)
}

func TestNewCatalog_Overrides(t *testing.T) {
	c := NewCatalog(map[string]Override{
		"growth":      {AnnualReturn: ptr(0.05)},
		"index":       {Label: "Index Fund"}, // alias resolves to balanced
		"real_estate": {AnnualReturn: ptr(0.045), Volatility: ptr(0.05)},
		"incomplete":  {Volatility: ptr(0.5)}, // custom without a return is skipped
	})

	g, ok := c.Lookup("growth")
	require.True(t, ok)
	assert.Equal(t, 0.05, g.AnnualReturn)
	assert.Equal(t, DefaultProfiles["growth"].Volatility, g.Volatility)

	b, _ := c.Lookup("balanced")
	assert.Equal(t, "Index Fund", b.Label)

	re, ok := c.Lookup("Real Estate")
	require.True(t, ok)
	assert.Equal(t, "Real Estate", re.Label)
	assert.Equal(t, defaultCycleMonths, re.CycleMonths)

	_, ok = c.Lookup("incomplete")
	assert.False(t, ok)

	assert.Equal(t, []string{"steady", "balanced", "growth", "aggressive", "moonshot", "real-estate"}, c.Names())
	assert.Len(t, c.Profiles(), 6)

	// Default catalog is untouched.
	dg, _ := Default.Lookup("growth")
	assert.Equal(t, 0.08, dg.AnnualReturn)
}

func TestCatalogNext(t *testing.T) {
	assert.Equal(t, "balanced", Default.Next("steady", 1))
	assert.Equal(t, "steady", Default.Next("moonshot", 1))
	assert.Equal(t, "moonshot", Default.Next("steady", -1))
	assert.Equal(t, "balanced", Default.Next("unknown", 1), "unknown starts from the first profile")
}

func TestMonthlyRate(t *testing.T) {
	p := Profile{AnnualReturn: 0.12}
	r := p.MonthlyRate()
	compounded := 1.0
	for i := 0; i < 12; i++ {
		compounded *= 1 + r
	}
	assert.InDelta(t, 1.12, compounded, 1e-12)
	assert.Equal(t, r, p.rateAt(7), "no cycle without volatility")
}

func TestOverrideValidate(t *testing.T) {
	tests := []struct {
		name string
		o    Override
		ok   bool
	}{
		{"empty", Override{}, true},
		{"label only", Override{Label: "Index"}, true},
		{"negative return above -100%", Override{AnnualReturn: ptr(-0.5)}, true},
		{"total loss", Override{AnnualReturn: ptr(-1.0)}, false},
		{"below -100%", Override{AnnualReturn: ptr(-2.0)}, false},
		{"nan return", Override{AnnualReturn: ptr(math.NaN())}, false},
		{"infinite return", Override{AnnualReturn: ptr(math.Inf(1))}, false},
		{"negative volatility", Override{Volatility: ptr(-0.1)}, false},
		{"nan volatility", Override{Volatility: ptr(math.NaN())}, false},
		{"negative cycle", Override{CycleMonths: ptr(-12)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.o.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidProfile)
			}
		})
	}
}

func TestNewCatalog_SkipsInvalidOverrides(t *testing.T) {
	c := NewCatalog(map[string]Override{
		"growth": {AnnualReturn: ptr(-2.0)},
		"doom":   {AnnualReturn: ptr(math.Inf(-1))},
		"steady": {Volatility: ptr(-1.0), Label: "Broken"},
		"bonds":  {AnnualReturn: ptr(0.03)},
	})

	g, _ := c.Lookup("growth")
	assert.Equal(t, DefaultProfiles["growth"].AnnualReturn, g.AnnualReturn)
	s, _ := c.Lookup("steady")
	assert.Equal(t, DefaultProfiles["steady"].Label, s.Label)
	_, ok := c.Lookup("doom")
	assert.False(t, ok)
	_, ok = c.Lookup("bonds")
	assert.True(t, ok)

	p := model.Params{InitialInvestment: 10_000, MonthlyInvestment: 500, Engine: "growth", Goal: 1e6}
	proj, err := c.Project(p, testStart)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(proj.FinalValue))
}
