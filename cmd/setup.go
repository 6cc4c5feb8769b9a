package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/flightpath/internal/config"
	"github.com/theirongolddev/flightpath/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	path := configPath()

	// Load existing config or defaults; never overwrite a file we can't read
	cfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("%w (fix or remove %s before running setup)", err, path)
	}

	fmt.Println()
	fmt.Println("  Welcome to flightpath!")
	fmt.Println()

	vals := tui.NewPlanValues(cfg.Params(), cfg.Appearance.Theme)
	if err := tui.NewPlanForm(vals, cfg.Catalog()).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup canceled, nothing saved.")
			return nil
		}
		return err
	}

	p, err := vals.Params()
	if err != nil {
		return err
	}
	cfg.SetParams(p)
	cfg.Appearance.Theme = vals.Theme

	if err := config.SaveFile(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Println("  Run `flightpath setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
