package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/flightpath/internal/cli"
	"github.com/theirongolddev/flightpath/internal/config"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List return engines",
	RunE:  runEngines,
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}

func runEngines(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile(configPath())
	if err != nil {
		return err
	}

	cat := cfg.Catalog()
	current, _ := cat.Lookup(cfg.Plan.Engine)

	var rows [][]string
	for _, p := range cat.Profiles() {
		name := p.Name
		if name == current.Name {
			name += " *"
		}
		rows = append(rows, []string{
			name,
			p.Label,
			cli.FormatRate(p.AnnualReturn),
			cli.FormatRate(p.Volatility),
			strconv.Itoa(p.CycleMonths) + " mo",
			p.Description,
		})
	}

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle("RETURN ENGINES"))
		fmt.Println()
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:  []string{"Engine", "Label", "Return", "Swing", "Cycle", "Description"},
		Rows:     rows,
		Align:    []cli.Align{cli.AlignLeft, cli.AlignLeft, cli.AlignRight, cli.AlignRight, cli.AlignRight, cli.AlignLeft},
		MaxWidth: 48,
	}))
	return nil
}
