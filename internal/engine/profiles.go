package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Profile describes one growth engine.
type Profile struct {
	Name         string
	Label        string
	Description  string
	AnnualReturn float64 // nominal, 0.07 = 7%/yr
	Volatility   float64 // annual swing of the market cycle
	CycleMonths  int     // length of one boom/bust cycle
}

// MonthlyRate converts the annual return to its compound monthly equivalent.
func (p Profile) MonthlyRate() float64 {
	return math.Pow(1+p.AnnualReturn, 1.0/12) - 1
}

// rateAt returns the month's rate including the deterministic market cycle.
// month is 1-based.
func (p Profile) rateAt(month int) float64 {
	base := p.MonthlyRate()
	if p.Volatility == 0 || p.CycleMonths <= 0 {
		return base
	}
	amp := p.Volatility / 12
	r := base + amp*math.Sin(2*math.Pi*float64(month)/float64(p.CycleMonths))
	if r < minMonthlyRate {
		r = minMonthlyRate
	}
	return r
}

const (
	minMonthlyRate     = -0.99
	defaultCycleMonths = 96
)

// Override replaces fields of a built-in profile, or defines a custom one
// when the name is not built in (AnnualReturn is then required).
type Override struct {
	Label        string   `toml:"label,omitempty"`
	Description  string   `toml:"description,omitempty"`
	AnnualReturn *float64 `toml:"annual_return,omitempty"`
	Volatility   *float64 `toml:"volatility,omitempty"`
	CycleMonths  *int     `toml:"cycle_months,omitempty"`
}

// defaultOrder fixes display order; maps iterate randomly.
var defaultOrder = []string{"steady", "balanced", "growth", "aggressive", "moonshot"}

// DefaultProfiles maps engine names to their built-in profile.
var DefaultProfiles = map[string]Profile{
	"steady": {
		Name: "steady", Label: "Steady",
		Description:  "Savings and bonds, barely moves",
		AnnualReturn: 0.03, Volatility: 0.02, CycleMonths: 48,
	},
	"balanced": {
		Name: "balanced", Label: "Balanced",
		Description:  "60/40 style index mix",
		AnnualReturn: 0.06, Volatility: 0.10, CycleMonths: 84,
	},
	"growth": {
		Name: "growth", Label: "Growth",
		Description:  "Broad equity index",
		AnnualReturn: 0.08, Volatility: 0.15, CycleMonths: 96,
	},
	"aggressive": {
		Name: "aggressive", Label: "Aggressive",
		Description:  "Small caps and emerging markets",
		AnnualReturn: 0.10, Volatility: 0.22, CycleMonths: 108,
	},
	"moonshot": {
		Name: "moonshot", Label: "Moonshot",
		Description:  "Concentrated high-risk bets",
		AnnualReturn: 0.14, Volatility: 0.35, CycleMonths: 120,
	},
}

var aliases = map[string]string{
	"conservative": "steady",
	"safe":         "steady",
	"index":        "balanced",
	"moderate":     "balanced",
	"equity":       "growth",
	"high-growth":  "aggressive",
	"rocket":       "moonshot",
}

var titleCaser = cases.Title(language.English)

// NormalizeName lowercases the selector and folds separators,
// e.g. "High_Growth" -> "high-growth".
func NormalizeName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	return s
}

// Catalog resolves engine selectors against the built-in table plus overrides.
// A Catalog is read-only after construction.
type Catalog struct {
	profiles map[string]Profile
	order    []string
}

// Default is the catalog without user overrides.
var Default = NewCatalog(nil)

// Validate reports whether the override's numbers produce a usable profile.
// An annual return must be finite and above -100%.
func (o Override) Validate() error {
	if r := o.AnnualReturn; r != nil && (!finite(*r) || *r <= -1) {
		return fmt.Errorf("annual_return %v: %w", *r, ErrInvalidProfile)
	}
	if v := o.Volatility; v != nil && (!finite(*v) || *v < 0) {
		return fmt.Errorf("volatility %v: %w", *v, ErrInvalidProfile)
	}
	if c := o.CycleMonths; c != nil && *c < 0 {
		return fmt.Errorf("cycle_months %d: %w", *c, ErrInvalidProfile)
	}
	return nil
}

// NewCatalog builds a catalog from DefaultProfiles with overrides applied.
// Invalid overrides, and custom ones without an annual return, are skipped.
func NewCatalog(overrides map[string]Override) *Catalog {
	c := &Catalog{
		profiles: make(map[string]Profile, len(DefaultProfiles)+len(overrides)),
		order:    append([]string(nil), defaultOrder...),
	}
	for name, p := range DefaultProfiles {
		c.profiles[name] = p
	}

	var custom []string
	for raw, o := range overrides {
		if o.Validate() != nil {
			continue
		}
		name := NormalizeName(raw)
		if target, ok := aliases[name]; ok {
			name = target
		}
		p, builtin := c.profiles[name]
		if !builtin {
			if o.AnnualReturn == nil {
				continue
			}
			p = Profile{Name: name, Label: titleCaser.String(strings.ReplaceAll(name, "-", " ")), CycleMonths: defaultCycleMonths}
			custom = append(custom, name)
		}
		if o.Label != "" {
			p.Label = o.Label
		}
		if o.Description != "" {
			p.Description = o.Description
		}
		if o.AnnualReturn != nil {
			p.AnnualReturn = *o.AnnualReturn
		}
		if o.Volatility != nil {
			p.Volatility = *o.Volatility
		}
		if o.CycleMonths != nil {
			p.CycleMonths = *o.CycleMonths
		}
		c.profiles[name] = p
	}
	sort.Strings(custom)
	c.order = append(c.order, custom...)
	return c
}

// Lookup resolves a selector, following aliases. Empty selects "growth".
func (c *Catalog) Lookup(selector string) (Profile, bool) {
	name := NormalizeName(selector)
	if name == "" {
		name = DefaultEngine
	}
	if p, ok := c.profiles[name]; ok {
		return p, true
	}
	if target, ok := aliases[name]; ok {
		p, ok := c.profiles[target]
		return p, ok
	}
	return Profile{}, false
}

// Names returns profile names in display order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Profiles returns all profiles in display order.
func (c *Catalog) Profiles() []Profile {
	out := make([]Profile, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.profiles[name])
	}
	return out
}

// Next returns the engine after selector in display order, wrapping around.
// Used by the TUI to cycle engines.
func (c *Catalog) Next(selector string, step int) string {
	p, ok := c.Lookup(selector)
	idx := 0
	if ok {
		for i, name := range c.order {
			if name == p.Name {
				idx = i
				break
			}
		}
	}
	n := len(c.order)
	return c.order[((idx+step)%n+n)%n]
}
