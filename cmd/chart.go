package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/flightpath/internal/cli"
	"github.com/theirongolddev/flightpath/internal/model"
	"github.com/theirongolddev/flightpath/internal/pipeline"
)

var flagFormat string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the sampled flight path chart series",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format: table, csv, json")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	cfg, p, err := loadPlan()
	if err != nil {
		return err
	}

	points, err := pipeline.NewMemo(cfg.Catalog().Project, 1).Chart(p)
	if err != nil {
		return err
	}
	return writeChart(os.Stdout, points, flagFormat)
}

func writeChart(w io.Writer, points []model.ChartPoint, format string) error {
	switch format {
	case "table", "":
		rows := make([][]string, len(points))
		for i, pt := range points {
			rows[i] = []string{pt.Label, cli.FormatMoney(pt.PortfolioValue), cli.FormatMoney(pt.Goal)}
		}
		_, err := io.WriteString(w, cli.RenderTable(cli.Table{
			Headers: []string{"Date", "Portfolio Value", "Goal"},
			Rows:    rows,
		}))
		return err
	case "csv":
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"date", "Portfolio Value", "Goal"})
		for _, pt := range points {
			_ = cw.Write([]string{
				pt.Label,
				strconv.FormatFloat(pt.PortfolioValue, 'f', -1, 64),
				strconv.FormatFloat(pt.Goal, 'f', -1, 64),
			})
		}
		cw.Flush()
		return cw.Error()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	default:
		return fmt.Errorf("unknown format %q (try: table, csv, json)", format)
	}
}
