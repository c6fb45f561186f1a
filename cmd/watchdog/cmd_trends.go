package main

import (
	"github.com/spf13/cobra"

	"watchdog/internal/render"
	"watchdog/internal/services/detect/service"
)

var trendsFlags struct {
	inputs      []string
	timeColumn  string
	valueColumn string
	groupBy     string
	format      string
	output      string
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Summarize the direction and volatility of each group",
	Long: `Trends compares recent and previous averages per group and reports the
direction, magnitude, and volatility of each series. Groups with fewer
than seven points are skipped.`,
	Args: cobra.NoArgs,
	RunE: runTrends,
}

func init() {
	f := trendsCmd.Flags()
	f.StringArrayVarP(&trendsFlags.inputs, "input", "i", nil, "CSV input file (repeatable)")
	f.StringVar(&trendsFlags.timeColumn, "time-column", "date", "timestamp column name")
	f.StringVar(&trendsFlags.valueColumn, "value-column", "", "value column name (default: first of cost, unblended_cost, amount)")
	f.StringVar(&trendsFlags.groupBy, "group-by", "service", "grouping column name")
	f.StringVarP(&trendsFlags.format, "format", "f", string(render.FormatJSON), "output format: json, yaml, csv, text")
	f.StringVarP(&trendsFlags.output, "output", "o", "", "write the summaries to a file (default: stdout)")
}

func runTrends(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(trendsFlags.format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	rows, err := loadRows(ctx, trendsFlags.inputs, trendsFlags.timeColumn, trendsFlags.valueColumn, trendsFlags.groupBy)
	if err != nil {
		return err
	}

	sums, err := service.New().Trends(ctx, rows)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(trendsFlags.output)
	if err != nil {
		return err
	}
	if err := render.Trends(w, sums, format); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
