// Package detector scores points against their trailing baseline and
// classifies material deviations into findings.
package detector

import (
	"time"
)

// Severity is the ordinal tier assigned to a finding.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Type is the closed set of anomaly variants.
type Type string

const (
	TypeSpike Type = "spike"
	TypeDrift Type = "drift"
	TypeNew   Type = "new"
	TypeDrop  Type = "drop"

	// typeNone marks points that classify to nothing; never emitted.
	typeNone Type = ""
)

// Finding is one classified deviation. DeltaPct is nil when the baseline
// mean is zero, where a percentage is undefined.
type Finding struct {
	Timestamp time.Time
	Group     string
	Baseline  float64
	Current   float64
	Delta     float64
	DeltaPct  *float64
	Score     float64
	Severity  Severity
	Type      Type
}

// Config holds the detection knobs. Validation (positive window, positive
// threshold) is the caller's job; the engine assumes a sane Config.
type Config struct {
	Window     time.Duration
	Threshold  float64 // standard deviations
	MinAmount  float64 // absolute-delta floor, 0 disables
	MinPercent float64 // percentage-delta floor, 0 disables
	DropRatio  float64 // collapse ratio for DROP, e.g. 0.9 means current <= 10% of mean
}

// Defaults mirrors the documented CLI defaults.
func Defaults() Config {
	return Config{
		Window:    30 * 24 * time.Hour,
		Threshold: 3.0,
		DropRatio: 0.9,
	}
}
