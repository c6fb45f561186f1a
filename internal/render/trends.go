package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"

	"watchdog/internal/core/trend"
	perr "watchdog/internal/platform/errors"
)

// Trends writes per-group trend summaries to w in the requested format.
func Trends(w io.Writer, sums []trend.Summary, f Format) error {
	switch f {
	case FormatJSON:
		return asJSON(w, sums)
	case FormatYAML:
		return asYAML(w, sums)
	case FormatCSV:
		return trendsCSV(w, sums)
	case FormatText:
		return trendsText(w, sums)
	default:
		return perr.Usagef("unknown output format %q", f)
	}
}

var trendHeader = []string{
	"group", "trend_direction", "trend_magnitude_pct", "recent_avg", "previous_avg", "volatility_level", "points_analyzed", "data_quality",
}

func trendsCSV(w io.Writer, sums []trend.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trendHeader); err != nil {
		return err
	}
	for _, s := range sums {
		rec := []string{
			s.Group,
			string(s.Direction),
			num(s.MagnitudePct),
			num(s.RecentAvg),
			num(s.PreviousAvg),
			string(s.VolatilityTier),
			fmt.Sprintf("%d", s.PointsAnalyzed),
			string(s.DataQuality),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func trendsText(w io.Writer, sums []trend.Summary) error {
	if len(sums) == 0 {
		_, err := fmt.Fprintln(w, "no groups with enough history for trend analysis")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tDIRECTION\tMAGNITUDE%\tRECENT AVG\tPREVIOUS AVG\tVOLATILITY\tPOINTS\tQUALITY")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.2f\t%.2f\t%s\t%d\t%s\n",
			s.Group, s.Direction, s.MagnitudePct, s.RecentAvg, s.PreviousAvg, s.VolatilityTier, s.PointsAnalyzed, s.DataQuality)
	}
	return tw.Flush()
}
