package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"watchdog/internal/core/detector"
	"watchdog/internal/core/trend"
	"watchdog/internal/services/detect/domain"
)

func TestWriteReportSections(t *testing.T) {
	pct := 186.5
	res := &domain.Result{
		SchemaVersion: domain.SchemaVersion,
		Metadata: domain.Metadata{
			GeneratedAt: time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC),
			InputFile:   "costs.csv",
			WindowDays:  30,
			Threshold:   3.0,
			GroupBy:     "service",
		},
		Summary: domain.Summary{TotalAnomalies: 2, GroupsImpacted: 2, MaxDeltaPct: 186.5},
		Anomalies: []domain.Anomaly{
			{
				Timestamp:   time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC),
				Group:       "AmazonEC2",
				Baseline:    120.5,
				Current:     345.2,
				Delta:       224.7,
				DeltaPct:    &pct,
				Severity:    detector.SeverityHigh,
				AnomalyType: detector.TypeSpike,
			},
			{
				Timestamp:   time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
				Group:       "AmazonS3",
				Baseline:    0,
				Current:     50,
				Delta:       50,
				Severity:    detector.SeverityMedium,
				AnomalyType: detector.TypeNew,
			},
		},
	}
	sums := []trend.Summary{
		{
			Group:          "AmazonEC2",
			Direction:      trend.DirectionIncreasing,
			MagnitudePct:   42.0,
			VolatilityTier: trend.VolatilityMedium,
			PointsAnalyzed: 14,
		},
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, res, sums); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"anomalies: 2 across 2 groups",
		"high     1",
		"medium   1",
		"AmazonEC2",
		"spike",
		"increasing",
		"top findings by absolute delta",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q in:\n%s", want, out)
		}
	}

	// the larger delta must be listed before the smaller one
	if strings.Index(out, "AmazonEC2") > strings.Index(out, "AmazonS3") {
		t.Fatalf("findings not ordered by absolute delta:\n%s", out)
	}
}

func TestWriteReportEmpty(t *testing.T) {
	res := &domain.Result{
		SchemaVersion: domain.SchemaVersion,
		Metadata: domain.Metadata{
			GeneratedAt: time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC),
			InputFile:   "costs.csv",
			WindowDays:  30,
			Threshold:   3.0,
			GroupBy:     "service",
		},
		Anomalies: []domain.Anomaly{},
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, res, nil); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "anomalies: 0 across 0 groups") {
		t.Fatalf("unexpected empty report:\n%s", out)
	}
	if strings.Contains(out, "top findings") {
		t.Fatalf("findings table rendered for empty result:\n%s", out)
	}
}

func TestReportOptionsEnvAndFlagPrecedence(t *testing.T) {
	t.Setenv("DETECT_WINDOW_DAYS", "7")
	t.Setenv("DETECT_THRESHOLD", "5")

	f := reportCmd.Flags()
	if err := f.Set("threshold", "2.5"); err != nil {
		t.Fatalf("set threshold: %v", err)
	}
	t.Cleanup(func() { reportFlags.threshold = 3.0 })

	opts := reportOptions(reportCmd)
	if opts.WindowDays != 7 {
		t.Fatalf("environment window not honored: %+v", opts)
	}
	if opts.Threshold != 2.5 {
		t.Fatalf("flag must beat environment: %+v", opts)
	}
}

func TestDetectOptionsFlagPrecedence(t *testing.T) {
	f := detectCmd.Flags()
	if err := f.Set("window", "14"); err != nil {
		t.Fatalf("set window: %v", err)
	}
	if err := f.Set("threshold", "2.5"); err != nil {
		t.Fatalf("set threshold: %v", err)
	}
	t.Cleanup(func() {
		detectFlags.window = 30
		detectFlags.threshold = 3.0
	})

	opts := detectOptions(detectCmd)
	if opts.WindowDays != 14 || opts.Threshold != 2.5 {
		t.Fatalf("flags not applied: %+v", opts)
	}
	// untouched options keep their defaults
	if opts.DropRatio != 0.9 || opts.GroupBy != "service" {
		t.Fatalf("defaults disturbed: %+v", opts)
	}
}
