package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/flightpath/internal/cli"
	"github.com/theirongolddev/flightpath/internal/config"
	"github.com/theirongolddev/flightpath/internal/model"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	path := configPath()
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", path)
	if fileExists(path) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("  Warning: %v\n", err)
	}
	fmt.Println()

	fmt.Println("  [Plan]")
	fmt.Printf("    Initial:  %s\n", cli.FormatMoney(cfg.Plan.Initial))
	fmt.Printf("    Monthly:  %s\n", cli.FormatMoney(cfg.Plan.Monthly))
	fmt.Printf("    Engine:   %s\n", cfg.Plan.Engine)
	fmt.Printf("    Goal:     %s\n", cli.FormatMoney(cfg.Plan.Goal))
	if cfg.Plan.HorizonYears > 0 {
		fmt.Printf("    Horizon:  %d years\n", cfg.Plan.HorizonYears)
	} else {
		fmt.Printf("    Horizon:  %d years (default)\n", model.DefaultHorizonYears)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:    %s\n", cfg.Server.Addr)
	fmt.Printf("    Log level:  %s\n", cfg.Server.LogLevel)
	fmt.Printf("    Log format: %s\n", cfg.Server.LogFormat)
	fmt.Println()

	fmt.Println("  [Engines]")
	if len(cfg.Engines.Overrides) == 0 {
		fmt.Println("    Overrides: none")
	} else {
		for _, p := range cfg.Catalog().Profiles() {
			if _, ok := cfg.Engines.Overrides[p.Name]; ok {
				fmt.Printf("    %-11s %s/yr, ±%s cycle\n", p.Name, cli.FormatRate(p.AnnualReturn), cli.FormatRate(p.Volatility))
			}
		}
	}
	fmt.Println()

	fmt.Println("  Run `flightpath setup` to reconfigure.")
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
