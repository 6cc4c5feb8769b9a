package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/flightpath/internal/engine"
	"github.com/theirongolddev/flightpath/internal/model"
	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

// PlanValues holds the plan form's text fields.
type PlanValues struct {
	Initial string
	Monthly string
	Engine  string
	Goal    string
	Horizon string
	Theme   string
}

// NewPlanValues seeds form fields from p.
func NewPlanValues(p model.Params, themeName string) *PlanValues {
	return &PlanValues{
		Initial: formatAmount(p.InitialInvestment),
		Monthly: formatAmount(p.MonthlyInvestment),
		Engine:  string(p.Engine),
		Goal:    formatAmount(p.Goal),
		Horizon: strconv.Itoa(p.Horizon()),
		Theme:   themeName,
	}
}

// Params parses the form fields. Call after the form validated them.
func (v *PlanValues) Params() (model.Params, error) {
	initial, err := parseAmount(v.Initial)
	if err != nil {
		return model.Params{}, fmt.Errorf("initial: %w", err)
	}
	monthly, err := parseAmount(v.Monthly)
	if err != nil {
		return model.Params{}, fmt.Errorf("monthly: %w", err)
	}
	goal, err := parseAmount(v.Goal)
	if err != nil {
		return model.Params{}, fmt.Errorf("goal: %w", err)
	}
	horizon, err := strconv.Atoi(strings.TrimSpace(v.Horizon))
	if err != nil {
		return model.Params{}, fmt.Errorf("horizon: %w", err)
	}
	p := model.Params{
		InitialInvestment: initial,
		MonthlyInvestment: monthly,
		Engine:            model.EngineType(v.Engine),
		Goal:              goal,
		HorizonYears:      horizon,
	}
	if horizon == model.DefaultHorizonYears {
		p.HorizonYears = 0
	}
	return p, engine.Validate(p)
}

// NewPlanForm builds the plan editor. Engine options come from cat.
func NewPlanForm(v *PlanValues, cat *engine.Catalog) *huh.Form {
	engines := make([]huh.Option[string], 0, len(cat.Names()))
	for _, p := range cat.Profiles() {
		label := fmt.Sprintf("%s (%.1f%%/yr)", p.Label, p.AnnualReturn*100)
		engines = append(engines, huh.NewOption(label, p.Name))
	}
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Initial investment").
				Prompt("$ ").
				Value(&v.Initial).
				Validate(validateAmount),
			huh.NewInput().
				Title("Monthly investment").
				Prompt("$ ").
				Value(&v.Monthly).
				Validate(validateAmount),
			huh.NewInput().
				Title("Goal").
				Prompt("$ ").
				Value(&v.Goal).
				Validate(validateGoal),
			huh.NewInput().
				Title("Horizon (years)").
				Value(&v.Horizon).
				Validate(validateHorizon),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Return engine").
				Options(engines...).
				Value(&v.Engine),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&v.Theme),
		),
	).WithShowHelp(true)
}

func (a *App) openPlanForm() {
	a.planVals = NewPlanValues(a.params, theme.Active.Name)
	a.planForm = NewPlanForm(a.planVals, a.catalog)
	if a.width > 0 {
		a.planForm = a.planForm.WithWidth(min(a.width, 72))
	}
}

func (a *App) closePlanForm() {
	a.planForm = nil
	a.planVals = nil
}

func (a App) updatePlanForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.planForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.planForm = f
	}

	switch a.planForm.State {
	case huh.StateCompleted:
		p, err := a.planVals.Params()
		themeName := a.planVals.Theme
		a.closePlanForm()
		if err != nil {
			return a, a.setFlash("Invalid plan: " + err.Error())
		}
		theme.SetActive(themeName)
		a.cfg.Appearance.Theme = themeName
		a.params = p
		a.recompute()
		return a, a.setFlash("Plan updated, press s to save")
	case huh.StateAborted:
		a.closePlanForm()
		return a, nil
	}

	return a, cmd
}

func validateAmount(s string) error {
	_, err := parseAmount(s)
	return err
}

func validateGoal(s string) error {
	v, err := parseAmount(s)
	if err != nil {
		return err
	}
	if v <= 0 {
		return errors.New("goal must be positive")
	}
	return nil
}

func validateHorizon(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter whole years")
	}
	if n < 1 || n > engine.MaxHorizonYears {
		return fmt.Errorf("between 1 and %d years", engine.MaxHorizonYears)
	}
	return nil
}

// parseAmount accepts "12,500", "$12500" and "12.5k".
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		mult, s = 1e3, strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		mult, s = 1e6, strings.TrimSuffix(s, "m")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("enter a number")
	}
	v *= mult
	if v < 0 {
		return 0, errors.New("must not be negative")
	}
	return v, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
