package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/flightpath/internal/cli"
	"github.com/theirongolddev/flightpath/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Projection summary: time to goal, invested, gained, total",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, p, err := loadPlan()
	if err != nil {
		return err
	}

	catalog := cfg.Catalog()
	dash, err := pipeline.NewMemo(catalog.Project, 1).Dashboard(p)
	if err != nil {
		return err
	}
	m := dash.Metrics
	profile, _ := catalog.Lookup(string(p.Engine))

	timeDetail := "beyond horizon"
	if m.HasTargetDate() {
		timeDetail = m.TargetDate.Format(pipeline.TargetDateLayout)
	}

	growth := cli.FormatGrowth(m.MonthlyGrowth) + "% monthly growth"
	if !m.GrowthDefined {
		growth += " (n/a)"
	}

	rows := [][]string{
		{"Time to Goal", m.TimeToGoal + " yrs", timeDetail},
		{"Money Invested", cli.FormatMoneyShortDecimal(m.MoneyInvested), cli.FormatMoneyDecimal(m.MoneyInvested)},
		{"Income Gained", cli.FormatMoneyShortDecimal(m.IncomeGained), growth},
		{"Total Value", cli.FormatMoneyShort(m.FinalValue), fmt.Sprintf("After %d years", m.HorizonYears)},
	}

	if flagQuiet {
		fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
		return nil
	}

	rows = append(rows,
		cli.SeparatorRow,
		[]string{"Goal", cli.FormatMoney(p.Goal), cli.FormatPercent(m.GoalProgress) + " reached"},
		[]string{"Monthly", cli.FormatMoney(p.MonthlyInvestment), cli.FormatMoney(p.InitialInvestment) + " initial"},
		[]string{"Engine", profile.Label, fmt.Sprintf("%s/yr, ±%s cycle", cli.FormatRate(profile.AnnualReturn), cli.FormatRate(profile.Volatility))},
	)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FLIGHT PATH  %s · goal %s", profile.Label, cli.FormatMoneyShort(p.Goal))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value", "Detail"},
		Rows:    rows,
		Align:   []cli.Align{cli.AlignLeft, cli.AlignRight, cli.AlignLeft},
	}))

	width := max(termWidth()-30, 10)
	values := cli.Downsample(pipeline.ChartValues(dash.Chart), width)
	if len(values) > 0 {
		fmt.Println()
		fmt.Printf("  %s  %s %s → %s\n",
			cli.RenderSparkline(values),
			dash.Chart[0].Label,
			cli.FormatMoneyShort(values[0]),
			cli.FormatMoneyShort(values[len(values)-1]),
		)
	}
	fmt.Printf("\n  Projected from %s\n\n", time.Now().Format(pipeline.ChartDateLayout))
	return nil
}
