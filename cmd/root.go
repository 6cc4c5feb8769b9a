// Package cmd implements the flightpath CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/theirongolddev/flightpath/internal/config"
	"github.com/theirongolddev/flightpath/internal/engine"
	"github.com/theirongolddev/flightpath/internal/model"
)

var (
	flagInitial float64
	flagMonthly float64
	flagEngine  string
	flagGoal    float64
	flagHorizon int
	flagConfig  string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "flightpath",
	Short: "Investment flight path projections",
	Long:  "Project how a portfolio grows toward a goal under different return engines.",

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runSummary

	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&flagInitial, "initial", "i", 0, "Initial investment (default from config)")
	pf.Float64VarP(&flagMonthly, "monthly", "m", 0, "Monthly investment (default from config)")
	pf.StringVarP(&flagEngine, "engine", "e", "", "Return engine: "+strings.Join(engine.Default.Names(), ", "))
	pf.Float64VarP(&flagGoal, "goal", "g", 0, "Wealth goal (default from config)")
	pf.IntVar(&flagHorizon, "horizon", 0, fmt.Sprintf("Horizon in years (default %d)", model.DefaultHorizonYears))
	pf.StringVar(&flagConfig, "config", "", "Config file (default "+config.ConfigPath()+")")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Print only the essentials")
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

// loadPlan loads the config and overlays any plan flags given on the
// command line.
func loadPlan() (config.Config, model.Params, error) {
	cfg, err := config.LoadFile(configPath())
	if err != nil {
		return cfg, model.Params{}, err
	}

	p := applyPlanFlags(cfg.Params(), rootCmd.PersistentFlags().Changed)
	if err := engine.Validate(p); err != nil {
		return cfg, p, err
	}
	if _, ok := cfg.Catalog().Lookup(string(p.Engine)); !ok {
		return cfg, p, fmt.Errorf("%w %q (try: %s)", engine.ErrUnknownEngine, p.Engine,
			strings.Join(cfg.Catalog().Names(), ", "))
	}
	return cfg, p, nil
}

func applyPlanFlags(p model.Params, changed func(string) bool) model.Params {
	if changed("initial") {
		p.InitialInvestment = flagInitial
	}
	if changed("monthly") {
		p.MonthlyInvestment = flagMonthly
	}
	if changed("engine") {
		p.Engine = model.EngineType(flagEngine)
	}
	if changed("goal") {
		p.Goal = flagGoal
	}
	if changed("horizon") {
		p.HorizonYears = flagHorizon
	}
	return p
}

// termWidth returns the stdout width, or 80 when it isn't a terminal.
func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func newLogger(level, format string, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)

	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log, nil
}
