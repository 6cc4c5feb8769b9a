package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/flightpath/internal/config"
	"github.com/theirongolddev/flightpath/internal/model"
)

var fixedNow = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) App {
	t.Helper()
	return NewApp(Options{
		Config:     config.DefaultConfig(),
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
		Now:        func() time.Time { return fixedNow },
	})
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		a = m.(App)
	}
	return a
}

func TestAdjustmentKeys(t *testing.T) {
	a := newTestApp(t)
	before := a.Dashboard().Metrics.MoneyInvested

	a = press(t, a, "+", "+", "]")
	p := a.Params()
	if p.MonthlyInvestment != 600 {
		t.Errorf("monthly = %v, want 600", p.MonthlyInvestment)
	}
	if p.InitialInvestment != 11_000 {
		t.Errorf("initial = %v, want 11000", p.InitialInvestment)
	}
	if !a.Dashboard().Metrics.MoneyInvested.GreaterThan(before) {
		t.Error("dashboard was not recomputed")
	}

	a = press(t, a, "g")
	if got := a.Params().Goal; got != 1_100_000 {
		t.Errorf("goal = %v, want 1100000", got)
	}
	a = press(t, a, "G")
	if got := a.Params().Goal; got != 990_000 {
		t.Errorf("goal = %v, want 990000", got)
	}
}

func TestAdjustmentKeysFloorAtZero(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < 20; i++ {
		a = press(t, a, "-", "[")
	}
	if p := a.Params(); p.MonthlyInvestment != 0 || p.InitialInvestment != 0 {
		t.Errorf("params = %+v, want zero contributions", p)
	}
	if a.Dashboard().Metrics.GrowthDefined {
		t.Error("growth should be undefined with nothing invested")
	}
}

func TestEngineCycle(t *testing.T) {
	a := newTestApp(t)
	if a.Params().Engine != "growth" {
		t.Fatalf("engine = %q", a.Params().Engine)
	}
	a = press(t, a, "e")
	if a.Params().Engine != "aggressive" {
		t.Errorf("after e: %q", a.Params().Engine)
	}
	a = press(t, a, "E", "E")
	if a.Params().Engine != "balanced" {
		t.Errorf("after E E: %q", a.Params().Engine)
	}
}

func TestSaveWritesPlan(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "+")

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if cmd == nil {
		t.Fatal("save returned no command")
	}
	msg, ok := cmd().(savedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("save msg = %#v", msg)
	}

	cfg, err := config.LoadFile(a.cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Plan.Monthly != 550 {
		t.Errorf("saved monthly = %v, want 550", cfg.Plan.Monthly)
	}
}

func TestQuit(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestConfigReload(t *testing.T) {
	a := newTestApp(t)
	cfg := config.DefaultConfig()
	cfg.Plan.Monthly = 2000
	cfg.Plan.Engine = "steady"

	m, _ := a.Update(configReloadedMsg{cfg: cfg})
	a = m.(App)
	if p := a.Params(); p.MonthlyInvestment != 2000 || p.Engine != "steady" {
		t.Errorf("params = %+v", p)
	}
	if a.flash != "Config reloaded" {
		t.Errorf("flash = %q", a.flash)
	}
}

func TestViewRendersDashboard(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	out := a.View()
	for _, want := range []string{"Time to Goal", "Money Invested", "Income Gained", "Total Value", "Flight Path", "Growth"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 40 {
		t.Errorf("view has %d lines, want 40", lines)
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if out := m.(App).View(); !strings.Contains(out, "too narrow") {
		t.Errorf("view = %q", out)
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = press(t, m.(App), "?")
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help not shown")
	}
	a = press(t, a, "x")
	if a.showHelp {
		t.Error("any key should close help")
	}
}

func TestPlanValuesParams(t *testing.T) {
	v := &PlanValues{Initial: "$12.5k", Monthly: "1,250", Engine: "balanced", Goal: "2m", Horizon: "30"}
	p, err := v.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	want := model.Params{InitialInvestment: 12_500, MonthlyInvestment: 1250, Engine: "balanced", Goal: 2_000_000, HorizonYears: 30}
	if p != want {
		t.Errorf("params = %+v, want %+v", p, want)
	}

	v.Horizon = "50"
	p, _ = v.Params()
	if p.HorizonYears != 0 {
		t.Errorf("default horizon should be stored as 0, got %d", p.HorizonYears)
	}

	v.Goal = "0"
	if _, err := v.Params(); err == nil {
		t.Error("zero goal should fail validation")
	}
}

func TestParseAmount(t *testing.T) {
	for _, bad := range []string{"", "abc", "-5", "NaN", "inf"} {
		if _, err := parseAmount(bad); err == nil {
			t.Errorf("parseAmount(%q) should fail", bad)
		}
	}
}

func TestConfigWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := config.SaveFile(path, config.DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	w, err := NewConfigWatcher(path, newTestApp(t).log)
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	defer w.Close()

	cfg := config.DefaultConfig()
	cfg.Plan.Goal = 3_000_000
	if err := config.SaveFile(path, cfg); err != nil {
		t.Fatal(err)
	}

	got := make(chan tea.Msg, 1)
	go func() { got <- w.Next()() }()

	select {
	case msg := <-got:
		rm, ok := msg.(configReloadedMsg)
		if !ok {
			t.Fatalf("msg = %#v", msg)
		}
		if rm.err != nil || rm.cfg.Plan.Goal != 3_000_000 {
			t.Errorf("reloaded = %+v, err %v", rm.cfg.Plan, rm.err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestConfigWatcherMissingDir(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "nope", "config.toml"), newTestApp(t).log)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
