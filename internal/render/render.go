// Package render serializes detection results. Renderers only format; the
// Result they receive is already final, so every format is a pure function
// of it.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	perr "watchdog/internal/platform/errors"
	"watchdog/internal/services/detect/domain"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatCSV, FormatText:
		return f, nil
	default:
		return "", perr.Usagef("unknown output format %q (json, yaml, csv, text)", s)
	}
}

// Result writes res to w in the requested format.
func Result(w io.Writer, res *domain.Result, f Format) error {
	switch f {
	case FormatJSON:
		return asJSON(w, res)
	case FormatYAML:
		return asYAML(w, res)
	case FormatCSV:
		return resultCSV(w, res)
	case FormatText:
		return resultText(w, res)
	default:
		return perr.Usagef("unknown output format %q", f)
	}
}

func asJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func asYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

var csvHeader = []string{
	"timestamp", "group", "baseline", "current", "delta", "delta_pct", "severity", "anomaly_type",
}

// resultCSV emits one record per anomaly. The summary and metadata have no
// tabular shape and are left to the other formats.
func resultCSV(w io.Writer, res *domain.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, a := range res.Anomalies {
		rec := []string{
			a.Timestamp.Format(timeLayout),
			a.Group,
			num(a.Baseline),
			num(a.Current),
			num(a.Delta),
			optNum(a.DeltaPct),
			string(a.Severity),
			string(a.AnomalyType),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func resultText(w io.Writer, res *domain.Result) error {
	md := res.Metadata
	if _, err := fmt.Fprintf(w,
		"anomaly report (schema %s)\ngenerated: %s\ninput: %s  window: %dd  threshold: %.2f  group by: %s\n\n",
		res.SchemaVersion, md.GeneratedAt.Format(timeLayout), md.InputFile, md.WindowDays, md.Threshold, md.GroupBy,
	); err != nil {
		return err
	}

	s := res.Summary
	if s.TotalAnomalies == 0 {
		_, err := fmt.Fprintln(w, "no anomalies detected")
		return err
	}
	if _, err := fmt.Fprintf(w, "%d anomalies across %d groups, max deviation %.1f%%\n\n",
		s.TotalAnomalies, s.GroupsImpacted, s.MaxDeltaPct); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIMESTAMP\tGROUP\tBASELINE\tCURRENT\tDELTA\tDELTA%\tSEVERITY\tTYPE")
	for _, a := range res.Anomalies {
		pct := "-"
		if a.DeltaPct != nil {
			pct = fmt.Sprintf("%+.1f", *a.DeltaPct)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%+.2f\t%s\t%s\t%s\n",
			a.Timestamp.Format("2006-01-02"), a.Group, a.Baseline, a.Current, a.Delta, pct, a.Severity, a.AnomalyType)
	}
	return tw.Flush()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func optNum(v *float64) string {
	if v == nil {
		return ""
	}
	return num(*v)
}
