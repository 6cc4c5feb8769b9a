// Package tui provides the interactive Bubble Tea dashboard for flightpath.
package tui

import (
	"io"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/flightpath/internal/config"
	"github.com/theirongolddev/flightpath/internal/engine"
	"github.com/theirongolddev/flightpath/internal/model"
	"github.com/theirongolddev/flightpath/internal/pipeline"
	"github.com/theirongolddev/flightpath/internal/tui/components"
	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

// Step sizes for the adjustment keys.
const (
	MonthlyStep = 50
	InitialStep = 1000
	GoalFactor  = 0.10
	minGoal     = 1000

	memoCapacity = 64
	flashTTL     = 2 * time.Second
)

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 160
	minChartHeight   = 6
)

// Options configures a new App.
type Options struct {
	Config     config.Config
	ConfigPath string
	Params     model.Params // overrides Config.Plan when non-zero
	Watcher    *ConfigWatcher
	Logger     logrus.FieldLogger
	NeedSetup  bool // open the plan form on start
	Now        func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	cfg     config.Config
	cfgPath string
	catalog *engine.Catalog
	memo    *pipeline.Memo
	now     func() time.Time
	log     logrus.FieldLogger
	watcher *ConfigWatcher

	params model.Params
	dash   pipeline.Dashboard
	err    error

	// UI state
	width    int
	height   int
	showHelp bool
	flash    string
	flashID  int

	planForm *huh.Form
	planVals *PlanValues
}

// configReloadedMsg is sent when the watched config file changes.
type configReloadedMsg struct {
	cfg config.Config
	err error
}

type flashExpiredMsg struct{ id int }

type savedMsg struct{ err error }

// NewApp creates a new TUI app model and computes the first dashboard.
func NewApp(opts Options) App {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	theme.SetActive(opts.Config.Appearance.Theme)

	a := App{
		cfg:     opts.Config,
		cfgPath: opts.ConfigPath,
		now:     now,
		log:     log,
		watcher: opts.Watcher,
		params:  opts.Config.Params(),
	}
	if opts.Params != (model.Params{}) {
		a.params = opts.Params
	}
	a.rebuildCatalog()
	a.recompute()

	if opts.NeedSetup {
		a.openPlanForm()
	}
	return a
}

func (a *App) rebuildCatalog() {
	a.catalog = a.cfg.Catalog()
	a.memo = pipeline.NewMemo(a.catalog.Project, memoCapacity)
	a.memo.SetClock(a.now)
}

func (a *App) recompute() {
	dash, err := a.memo.Dashboard(a.params)
	if err != nil {
		a.err = err
		a.log.WithError(err).Warn("projection failed")
		return
	}
	a.err = nil
	a.dash = dash
	a.params.Engine = dash.Projection.Params.Engine
}

// Params returns the parameters currently on screen.
func (a App) Params() model.Params { return a.params }

// Dashboard returns the current projection, metrics and chart.
func (a App) Dashboard() pipeline.Dashboard { return a.dash }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.watcher != nil {
		cmds = append(cmds, a.watcher.Next())
	}
	if a.planForm != nil {
		cmds = append(cmds, a.planForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.planForm != nil {
			a.planForm = a.planForm.WithWidth(min(msg.Width, 72))
		}
		return a, nil

	case configReloadedMsg:
		next := a.watcherNext()
		if msg.err != nil {
			a.log.WithError(msg.err).Warn("config reload failed")
			return a, tea.Batch(next, a.setFlash("Config error: "+msg.err.Error()))
		}
		a.applyConfig(msg.cfg)
		a.log.WithField("path", a.cfgPath).Info("config reloaded")
		return a, tea.Batch(next, a.setFlash("Config reloaded"))

	case savedMsg:
		if msg.err != nil {
			a.log.WithError(msg.err).Error("saving plan")
			return a, a.setFlash("Save failed: " + msg.err.Error())
		}
		return a, a.setFlash("Plan saved")

	case flashExpiredMsg:
		if msg.id == a.flashID {
			a.flash = ""
		}
		return a, nil

	case tea.MouseMsg:
		if a.planForm != nil || a.showHelp {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == headerEngineRow {
			tabs := a.engineTabs()
			if i := components.EngineTabAtX(tabs, msg.X); i >= 0 {
				a.params.Engine = model.EngineType(tabs[i].Name)
				a.recompute()
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Plan form intercepts all keys
		if a.planForm != nil {
			if key == "esc" {
				a.closePlanForm()
				return a, nil
			}
			return a.updatePlanForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.handleKey(key)
	}

	if a.planForm != nil {
		return a.updatePlanForm(msg)
	}
	return a, nil
}

func (a App) handleKey(key string) (tea.Model, tea.Cmd) {
	p := a.params
	switch key {
	case "q":
		return a, tea.Quit
	case "e", "right":
		p.Engine = model.EngineType(a.catalog.Next(string(p.Engine), 1))
	case "E", "left":
		p.Engine = model.EngineType(a.catalog.Next(string(p.Engine), -1))
	case "+", "=":
		p.MonthlyInvestment += MonthlyStep
	case "-", "_":
		p.MonthlyInvestment = max(0, p.MonthlyInvestment-MonthlyStep)
	case "]":
		p.InitialInvestment += InitialStep
	case "[":
		p.InitialInvestment = max(0, p.InitialInvestment-InitialStep)
	case "g":
		p.Goal = scaleGoal(p.Goal, 1+GoalFactor)
	case "G":
		p.Goal = scaleGoal(p.Goal, 1-GoalFactor)
	case "t":
		next := theme.Next(theme.Active.Name)
		theme.SetActive(next.Name)
		a.cfg.Appearance.Theme = next.Name
		return a, a.setFlash("Theme: " + next.Name)
	case "p":
		a.openPlanForm()
		return a, a.planForm.Init()
	case "s":
		return a, a.saveCmd()
	default:
		return a, nil
	}

	if p != a.params {
		a.params = p
		a.recompute()
	}
	return a, nil
}

// scaleGoal multiplies goal by f and rounds to the nearest thousand.
func scaleGoal(goal, f float64) float64 {
	return max(minGoal, math.Round(goal*f/1000)*1000)
}

func (a *App) applyConfig(cfg config.Config) {
	a.cfg = cfg
	theme.SetActive(cfg.Appearance.Theme)
	a.params = cfg.Params()
	a.rebuildCatalog()
	a.recompute()
}

func (a App) saveCmd() tea.Cmd {
	cfg := a.cfg
	cfg.SetParams(a.params)
	path := a.cfgPath
	return func() tea.Msg {
		return savedMsg{err: config.SaveFile(path, cfg)}
	}
}

func (a *App) setFlash(s string) tea.Cmd {
	a.flashID++
	a.flash = s
	id := a.flashID
	return tea.Tick(flashTTL, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

func (a App) watcherNext() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Next()
}

func (a App) engineTabs() []components.EngineTab {
	profiles := a.catalog.Profiles()
	tabs := make([]components.EngineTab, len(profiles))
	for i, p := range profiles {
		tabs[i] = components.EngineTab{Name: p.Name, Label: p.Label}
	}
	return tabs
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}
