// Package baseline computes trailing-window statistics for a time series.
//
// For each row at time t the baseline covers rows in [t-window, t): strictly
// before t, so a row never contributes to its own baseline and rows sharing
// a timestamp never see each other. Stats are kept incrementally with
// running sums, so a full series scan is O(n).
package baseline

import (
	"math"
	"time"

	"watchdog/internal/core/series"
)

// Stat is the trailing-window summary attached to a single row.
type Stat struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Mean        float64
	Stddev      float64
	SampleCount int
}

type accumulator struct {
	n     int
	sum   float64
	sumSq float64
}

func (a *accumulator) add(v float64) {
	a.n++
	a.sum += v
	a.sumSq += v * v
}

func (a *accumulator) remove(v float64) {
	a.n--
	a.sum -= v
	a.sumSq -= v * v
}

func (a *accumulator) mean() float64 {
	if a.n == 0 {
		return 0
	}
	return a.sum / float64(a.n)
}

// stddev is the sample standard deviation (n-1 divisor), 0 when n <= 1.
func (a *accumulator) stddev() float64 {
	if a.n <= 1 {
		return 0
	}
	m := a.mean()
	variance := (a.sumSq - float64(a.n)*m*m) / float64(a.n-1)
	if variance < 0 {
		// float cancellation can push a zero variance slightly negative
		variance = 0
	}
	return math.Sqrt(variance)
}

// Scan returns one Stat per row of s, aligned by index. Rows must be sorted
// by timestamp ascending, which series.Group guarantees. The accumulator
// always covers rows[lo:hi]; both pointers only move forward.
func Scan(s series.Series, window time.Duration) []Stat {
	stats := make([]Stat, len(s.Rows))
	var acc accumulator
	lo, hi := 0, 0
	for i, row := range s.Rows {
		start := row.Timestamp.Add(-window)

		for hi < i && s.Rows[hi].Timestamp.Before(row.Timestamp) {
			acc.add(s.Rows[hi].Value)
			hi++
		}
		for lo < hi && s.Rows[lo].Timestamp.Before(start) {
			acc.remove(s.Rows[lo].Value)
			lo++
		}

		stats[i] = Stat{
			WindowStart: start,
			WindowEnd:   row.Timestamp,
			Mean:        acc.mean(),
			Stddev:      acc.stddev(),
			SampleCount: acc.n,
		}
	}
	return stats
}
