package detector

import (
	"watchdog/internal/core/baseline"
	"watchdog/internal/core/series"
)

// Detect evaluates one group's series and returns its findings in timestamp
// order. Points with fewer than two baseline samples carry too little
// history to judge and are skipped, never reported.
func Detect(s series.Series, cfg Config) []Finding {
	stats := baseline.Scan(s, cfg.Window)

	var findings []Finding
	var prior []float64 // scores of earlier eligible points, for drift detection

	for i, row := range s.Rows {
		stat := stats[i]
		if stat.SampleCount < 2 {
			continue
		}

		dev := scorePoint(row.Value, stat)
		typ := classify(row.Value, stat, dev, prior, cfg)
		prior = append(prior, dev.score)

		if typ == typeNone || !passesFilters(dev, cfg) {
			continue
		}

		findings = append(findings, Finding{
			Timestamp: row.Timestamp,
			Group:     s.Group,
			Baseline:  stat.Mean,
			Current:   row.Value,
			Delta:     dev.delta,
			DeltaPct:  dev.deltaPct,
			Score:     dev.score,
			Severity:  severityOf(dev, typ),
			Type:      typ,
		})
	}
	return findings
}
