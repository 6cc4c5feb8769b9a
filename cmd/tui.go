package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/flightpath/internal/tui"
	"github.com/theirongolddev/flightpath/internal/tui/theme"
)

var (
	flagLogFile string
	flagNoWatch bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	tuiCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Don't reload the config file when it changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, p, err := loadPlan()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	var out io.Writer = io.Discard
	level := "info"
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out, level = f, "debug"
	}
	log, err := newLogger(level, "text", out)
	if err != nil {
		return err
	}

	path := configPath()
	var watcher *tui.ConfigWatcher
	if !flagNoWatch {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			log.WithError(err).Warn("config directory unavailable, not watching")
		} else if watcher, err = tui.NewConfigWatcher(path, log); err != nil {
			log.WithError(err).Warn("config watcher unavailable")
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	app := tui.NewApp(tui.Options{
		Config:     cfg,
		ConfigPath: path,
		Params:     p,
		Watcher:    watcher,
		Logger:     log,
		NeedSetup:  !fileExists(path),
	})
	prog := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
