package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"watchdog/internal/core/detector"
	"watchdog/internal/core/trend"
	"watchdog/internal/platform/config"
	"watchdog/internal/services/detect/domain"
	detectmod "watchdog/internal/services/detect/module"
	"watchdog/internal/services/detect/service"
)

// topFindings caps the findings table in the report.
const topFindings = 10

var reportFlags struct {
	inputs      []string
	timeColumn  string
	valueColumn string
	groupBy     string
	window      int
	threshold   float64
	output      string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Produce a combined anomaly and trend report",
	Long: `Report runs detection and trend analysis over the same input and writes
a human-readable summary: severity counts, the largest findings by
absolute delta, and per-group trend lines.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	df := domain.Defaults()
	f := reportCmd.Flags()
	f.StringArrayVarP(&reportFlags.inputs, "input", "i", nil, "CSV input file (repeatable)")
	f.StringVar(&reportFlags.timeColumn, "time-column", "date", "timestamp column name")
	f.StringVar(&reportFlags.valueColumn, "value-column", "", "value column name (default: first of cost, unblended_cost, amount)")
	f.StringVar(&reportFlags.groupBy, "group-by", df.GroupBy, "grouping column name")
	f.IntVar(&reportFlags.window, "window", df.WindowDays, "trailing baseline window in days")
	f.Float64Var(&reportFlags.threshold, "threshold", df.Threshold, "z-score threshold for spike/drift classification")
	f.StringVarP(&reportFlags.output, "output", "o", "", "write the report to a file (default: stdout)")
}

// reportOptions merges environment defaults with explicitly set flags,
// with the same precedence detect uses: flag > environment > built-in.
func reportOptions(cmd *cobra.Command) domain.Options {
	opts := detectmod.FromConfig(config.New())
	f := cmd.Flags()
	if f.Changed("window") {
		opts.WindowDays = reportFlags.window
	}
	if f.Changed("threshold") {
		opts.Threshold = reportFlags.threshold
	}
	if f.Changed("group-by") {
		opts.GroupBy = reportFlags.groupBy
	}
	return opts
}

func runReport(cmd *cobra.Command, args []string) error {
	opts := reportOptions(cmd)

	ctx := cmd.Context()
	rows, err := loadRows(ctx, reportFlags.inputs, reportFlags.timeColumn, reportFlags.valueColumn, opts.GroupBy)
	if err != nil {
		return err
	}

	svc := service.New()
	res, err := svc.Run(ctx, rows, opts, domain.RunMeta{
		InputFile:   strings.Join(reportFlags.inputs, ","),
		GeneratedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	sums, err := svc.Trends(ctx, rows)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(reportFlags.output)
	if err != nil {
		return err
	}
	if err := writeReport(w, res, sums); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}

func writeReport(w io.Writer, res *domain.Result, sums []trend.Summary) error {
	fmt.Fprintf(w, "watchdog report  generated %s\n", res.Metadata.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "input: %s  window: %dd  threshold: %.2f  group by: %s\n\n",
		res.Metadata.InputFile, res.Metadata.WindowDays, res.Metadata.Threshold, res.Metadata.GroupBy)

	fmt.Fprintf(w, "anomalies: %d across %d groups\n", res.Summary.TotalAnomalies, res.Summary.GroupsImpacted)
	for _, sev := range []detector.Severity{detector.SeverityCritical, detector.SeverityHigh, detector.SeverityMedium, detector.SeverityLow} {
		n := 0
		for _, a := range res.Anomalies {
			if a.Severity == sev {
				n++
			}
		}
		if n > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", sev, n)
		}
	}

	if len(res.Anomalies) > 0 {
		top := make([]domain.Anomaly, len(res.Anomalies))
		copy(top, res.Anomalies)
		sort.SliceStable(top, func(i, j int) bool {
			return math.Abs(top[i].Delta) > math.Abs(top[j].Delta)
		})
		if len(top) > topFindings {
			top = top[:topFindings]
		}

		fmt.Fprintf(w, "\ntop findings by absolute delta\n")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tGROUP\tTYPE\tSEVERITY\tBASELINE\tCURRENT\tDELTA")
		for _, a := range top {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%+.2f\n",
				a.Timestamp.Format("2006-01-02"), a.Group, a.AnomalyType, a.Severity,
				a.Baseline, a.Current, a.Delta)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(sums) > 0 {
		fmt.Fprintf(w, "\ntrends\n")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "GROUP\tDIRECTION\tMAGNITUDE\tVOLATILITY\tPOINTS")
		for _, s := range sums {
			fmt.Fprintf(tw, "%s\t%s\t%.1f%%\t%s\t%d\n",
				s.Group, s.Direction, s.MagnitudePct, s.VolatilityTier, s.PointsAnalyzed)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
