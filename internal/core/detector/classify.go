package detector

import (
	"math"

	"watchdog/internal/core/baseline"
)

// driftLookback is how many prior scored points must form a rising run
// below threshold for an over-threshold point to count as gradual drift.
const driftLookback = 2

// classify runs the ordered rules for one scored point. First match wins;
// typeNone means the point produces no finding.
//
// Rule order: NEW (no meaningful baseline spend), DROP (collapse toward
// zero against a real baseline), then SPIKE vs DRIFT for over-threshold
// scores, split on whether the approach was abrupt or a sustained climb.
func classify(current float64, stat baseline.Stat, dev deviation, prior []float64, cfg Config) Type {
	switch {
	case stat.Mean == 0 && current != 0:
		if cfg.MinAmount > 0 && current < cfg.MinAmount {
			return typeNone
		}
		return TypeNew
	case stat.Mean > 0 && current <= stat.Mean*(1-cfg.DropRatio):
		return TypeDrop
	case math.Abs(dev.score) >= cfg.Threshold:
		if isGradualClimb(prior, cfg.Threshold) {
			return TypeDrift
		}
		return TypeSpike
	default:
		return typeNone
	}
}

// isGradualClimb reports whether the trailing scores form a strictly
// increasing run that stayed below threshold, i.e. the series crept up
// rather than jumping.
func isGradualClimb(prior []float64, threshold float64) bool {
	if len(prior) < driftLookback {
		return false
	}
	recent := prior[len(prior)-driftLookback:]
	last := math.Inf(-1)
	for _, s := range recent {
		if s >= threshold || s <= last {
			return false
		}
		last = s
	}
	return true
}

// passesFilters applies the minimum-amount and minimum-percent floors.
// A nil percentage (zero-mean baseline) skips the percent filter, since
// such points are judged by absolute delta alone.
func passesFilters(dev deviation, cfg Config) bool {
	if cfg.MinAmount > 0 && math.Abs(dev.delta) < cfg.MinAmount {
		return false
	}
	if cfg.MinPercent > 0 && dev.deltaPct != nil && math.Abs(*dev.deltaPct) < cfg.MinPercent {
		return false
	}
	return true
}

// severityOf maps score and percentage magnitude onto a tier. Breakpoints
// are monotonic and exhaustive, so every finding lands in exactly one tier.
// Infinite scores from flat baselines land in critical.
func severityOf(dev deviation, typ Type) Severity {
	if typ == TypeNew {
		// no baseline to scale against, keep a fixed mid tier
		return SeverityMedium
	}

	score := math.Abs(dev.score)
	pct := 0.0
	if dev.deltaPct != nil {
		pct = math.Abs(*dev.deltaPct)
	}

	switch {
	case score >= 8 || pct >= 400:
		return SeverityCritical
	case score >= 3 || pct >= 100:
		return SeverityHigh
	case score >= 2 || pct >= 50:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
