// Package domain defines the types and interfaces of the detect service.
package domain

import (
	"time"

	"watchdog/internal/core/detector"
)

// SchemaVersion identifies the result field contract. Bump only on
// breaking changes to the Result shape.
const SchemaVersion = "1.0"

// Options are the detection knobs supplied by the caller. Zero values are
// filled by Defaults before validation.
type Options struct {
	WindowDays int     `validate:"gt=0"`
	Threshold  float64 `validate:"gt=0"`
	MinAmount  float64 `validate:"gte=0"`
	MinPercent float64 `validate:"gte=0"`
	DropRatio  float64 `validate:"gte=0,lte=1"`
	Workers    int     `validate:"gte=1"`
	GroupBy    string  `validate:"required"`
}

// Defaults mirrors the documented CLI defaults.
func Defaults() Options {
	return Options{
		WindowDays: 30,
		Threshold:  3.0,
		DropRatio:  0.9,
		Workers:    4,
		GroupBy:    "service",
	}
}

// RunMeta carries run context that ends up in Result.Metadata. GeneratedAt
// is injected by the caller so identical inputs produce identical results.
type RunMeta struct {
	InputFile   string
	GeneratedAt time.Time
}

// Result is the schema-versioned output of one detection run. It is always
// produced, with Anomalies empty rather than nil when nothing was found.
type Result struct {
	SchemaVersion string    `json:"schema_version" yaml:"schema_version"`
	Metadata      Metadata  `json:"metadata" yaml:"metadata"`
	Summary       Summary   `json:"summary" yaml:"summary"`
	Anomalies     []Anomaly `json:"anomalies" yaml:"anomalies"`
}

// Metadata records what the run was asked to do.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	InputFile   string    `json:"input_file" yaml:"input_file"`
	WindowDays  int       `json:"window" yaml:"window"`
	Threshold   float64   `json:"threshold" yaml:"threshold"`
	GroupBy     string    `json:"group_by" yaml:"group_by"`
}

// Summary is derived from Anomalies alone.
type Summary struct {
	TotalAnomalies int     `json:"total_anomalies" yaml:"total_anomalies"`
	GroupsImpacted int     `json:"groups_impacted" yaml:"groups_impacted"`
	MaxDeltaPct    float64 `json:"max_delta_pct" yaml:"max_delta_pct"`
}

// Anomaly is one finding on the wire. DeltaPct is null when the baseline
// mean was zero and a percentage is undefined.
type Anomaly struct {
	Timestamp   time.Time         `json:"timestamp" yaml:"timestamp"`
	Group       string            `json:"group" yaml:"group"`
	Baseline    float64           `json:"baseline" yaml:"baseline"`
	Current     float64           `json:"current" yaml:"current"`
	Delta       float64           `json:"delta" yaml:"delta"`
	DeltaPct    *float64          `json:"delta_pct" yaml:"delta_pct"`
	Severity    detector.Severity `json:"severity" yaml:"severity"`
	AnomalyType detector.Type     `json:"anomaly_type" yaml:"anomaly_type"`
}
