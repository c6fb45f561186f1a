package detector

import (
	"math"

	"watchdog/internal/core/baseline"
)

// deviation is the raw scorer output for one point, before classification.
type deviation struct {
	delta    float64
	deltaPct *float64 // nil when baseline mean is zero
	score    float64
}

// scorePoint compares current against its baseline. A zero stddev with a
// nonzero delta yields a signed infinite score: a flat history puts any
// deviation infinitely many standard deviations out, and must never fault.
func scorePoint(current float64, stat baseline.Stat) deviation {
	d := deviation{delta: current - stat.Mean}

	if stat.Mean != 0 {
		pct := 100 * d.delta / stat.Mean
		d.deltaPct = &pct
	}

	switch {
	case stat.Stddev > 0:
		d.score = d.delta / stat.Stddev
	case d.delta > 0:
		d.score = math.Inf(1)
	case d.delta < 0:
		d.score = math.Inf(-1)
	}
	return d
}
