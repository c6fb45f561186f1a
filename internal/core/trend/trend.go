// Package trend summarizes the direction and volatility of one group's
// series. It is advisory output alongside anomaly detection, not part of
// the finding pipeline.
package trend

import (
	"math"

	"watchdog/internal/core/series"
)

// Direction of the recent average relative to the earliest one.
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
)

// Volatility buckets the coefficient of variation of the whole series.
type Volatility string

const (
	VolatilityLow    Volatility = "low"
	VolatilityMedium Volatility = "medium"
	VolatilityHigh   Volatility = "high"
)

// Quality flags series whose values carry no spend signal.
type Quality string

const (
	QualityGood    Quality = "good"
	QualityLimited Quality = "limited"
)

// minPoints is the shortest series a trend summary is meaningful for.
const minPoints = 7

// windowPoints is the head/tail span the averages compare.
const windowPoints = 7

// Summary describes one group's trend over the analyzed span.
type Summary struct {
	Group          string     `json:"group" yaml:"group"`
	Direction      Direction  `json:"trend_direction" yaml:"trend_direction"`
	MagnitudePct   float64    `json:"trend_magnitude_pct" yaml:"trend_magnitude_pct"`
	RecentAvg      float64    `json:"recent_avg" yaml:"recent_avg"`
	PreviousAvg    float64    `json:"previous_avg" yaml:"previous_avg"`
	Volatility     float64    `json:"volatility" yaml:"volatility"`
	VolatilityTier Volatility `json:"volatility_level" yaml:"volatility_level"`
	PointsAnalyzed int        `json:"points_analyzed" yaml:"points_analyzed"`
	DataQuality    Quality    `json:"data_quality" yaml:"data_quality"`
}

// Analyze summarizes one series, or returns ok=false when the series is
// too short to say anything about. The recent average covers the last
// seven points; the previous average covers the first seven when at least
// fourteen exist, otherwise the two averages coincide and magnitude is 0.
func Analyze(s series.Series) (Summary, bool) {
	n := len(s.Rows)
	if n < minPoints {
		return Summary{}, false
	}

	recent := avg(s.Rows[n-windowPoints:])
	previous := recent
	if n >= 2*windowPoints {
		previous = avg(s.Rows[:windowPoints])
	}

	dir := DirectionDecreasing
	if recent > previous {
		dir = DirectionIncreasing
	}
	magnitude := math.Abs(recent-previous) / math.Max(previous, 0.01) * 100

	mean := avg(s.Rows)
	cv := stddev(s.Rows, mean) / math.Max(mean, 0.01)

	// a series with no positive spend at all says little about direction
	quality := QualityLimited
	var total float64
	for _, r := range s.Rows {
		total += r.Value
	}
	if total > 0 {
		quality = QualityGood
	}

	tier := VolatilityLow
	switch {
	case cv > 0.5:
		tier = VolatilityHigh
	case cv > 0.2:
		tier = VolatilityMedium
	}

	return Summary{
		Group:          s.Group,
		Direction:      dir,
		MagnitudePct:   magnitude,
		RecentAvg:      recent,
		PreviousAvg:    previous,
		Volatility:     cv,
		VolatilityTier: tier,
		PointsAnalyzed: n,
		DataQuality:    quality,
	}, true
}

// AnalyzeAll summarizes each series long enough to qualify, keeping the
// input's group order.
func AnalyzeAll(all []series.Series) []Summary {
	var out []Summary
	for _, s := range all {
		if sum, ok := Analyze(s); ok {
			out = append(out, sum)
		}
	}
	return out
}

func avg(rows []series.Row) float64 {
	if len(rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rows {
		sum += r.Value
	}
	return sum / float64(len(rows))
}

func stddev(rows []series.Row, mean float64) float64 {
	if len(rows) <= 1 {
		return 0
	}
	var sq float64
	for _, r := range rows {
		d := r.Value - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(rows)-1))
}
