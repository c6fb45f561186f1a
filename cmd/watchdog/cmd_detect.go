package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"watchdog/internal/platform/config"
	"watchdog/internal/render"
	"watchdog/internal/services/detect/domain"
	detectmod "watchdog/internal/services/detect/module"
	"watchdog/internal/services/detect/service"
)

var detectFlags struct {
	inputs      []string
	timeColumn  string
	valueColumn string
	groupBy     string
	window      int
	threshold   float64
	minAmount   float64
	minPercent  float64
	dropRatio   float64
	workers     int
	format      string
	output      string
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect anomalies in CSV cost or metric data",
	Long: `Detect loads one or more CSV files, partitions rows by group, and scores
each point against a trailing-window baseline of its own group.

  watchdog detect --input costs.csv
  watchdog detect -i jan.csv -i feb.csv --window 14 --threshold 2.5 -f yaml

Defaults may also be set through DETECT_* environment variables
(DETECT_WINDOW_DAYS, DETECT_THRESHOLD, ...); explicit flags win.
The command exits 0 when the run succeeds, whether or not anomalies
were found.`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

func init() {
	df := domain.Defaults()
	f := detectCmd.Flags()
	f.StringArrayVarP(&detectFlags.inputs, "input", "i", nil, "CSV input file (repeatable)")
	f.StringVar(&detectFlags.timeColumn, "time-column", "date", "timestamp column name")
	f.StringVar(&detectFlags.valueColumn, "value-column", "", "value column name (default: first of cost, unblended_cost, amount)")
	f.StringVar(&detectFlags.groupBy, "group-by", df.GroupBy, "grouping column name")
	f.IntVar(&detectFlags.window, "window", df.WindowDays, "trailing baseline window in days")
	f.Float64Var(&detectFlags.threshold, "threshold", df.Threshold, "z-score threshold for spike/drift classification")
	f.Float64Var(&detectFlags.minAmount, "min-amount", df.MinAmount, "suppress findings with absolute delta below this value")
	f.Float64Var(&detectFlags.minPercent, "min-percent", df.MinPercent, "suppress findings with percent delta below this value")
	f.Float64Var(&detectFlags.dropRatio, "drop-ratio", df.DropRatio, "fraction of baseline a value must fall by to classify as a drop")
	f.IntVar(&detectFlags.workers, "workers", df.Workers, "concurrent group workers")
	f.StringVarP(&detectFlags.format, "format", "f", string(render.FormatJSON), "output format: json, yaml, csv, text")
	f.StringVarP(&detectFlags.output, "output", "o", "", "write the result to a file (default: stdout)")
}

// detectOptions merges environment defaults with explicitly set flags.
// Precedence is flag > environment > built-in default.
func detectOptions(cmd *cobra.Command) domain.Options {
	opts := detectmod.FromConfig(config.New())
	f := cmd.Flags()
	if f.Changed("window") {
		opts.WindowDays = detectFlags.window
	}
	if f.Changed("threshold") {
		opts.Threshold = detectFlags.threshold
	}
	if f.Changed("min-amount") {
		opts.MinAmount = detectFlags.minAmount
	}
	if f.Changed("min-percent") {
		opts.MinPercent = detectFlags.minPercent
	}
	if f.Changed("drop-ratio") {
		opts.DropRatio = detectFlags.dropRatio
	}
	if f.Changed("workers") {
		opts.Workers = detectFlags.workers
	}
	if f.Changed("group-by") {
		opts.GroupBy = detectFlags.groupBy
	}
	return opts
}

func runDetect(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(detectFlags.format)
	if err != nil {
		return err
	}

	opts := detectOptions(cmd)
	ctx := cmd.Context()

	rows, err := loadRows(ctx, detectFlags.inputs, detectFlags.timeColumn, detectFlags.valueColumn, opts.GroupBy)
	if err != nil {
		return err
	}

	res, err := service.New().Run(ctx, rows, opts, domain.RunMeta{
		InputFile:   strings.Join(detectFlags.inputs, ","),
		GeneratedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(detectFlags.output)
	if err != nil {
		return err
	}
	if err := render.Result(w, res, format); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
