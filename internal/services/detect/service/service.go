// Package service implements the detect service.
package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"watchdog/internal/core/detector"
	"watchdog/internal/core/series"
	"watchdog/internal/core/trend"
	perr "watchdog/internal/platform/errors"
	"watchdog/internal/platform/logger"
	"watchdog/internal/services/detect/domain"
)

var validate = validator.New()

// Service implements domain.RunnerPort.
type Service struct {
	log *logger.Logger
}

// New constructs the detect service.
func New() *Service {
	return &Service{log: logger.Named("detect")}
}

// checkOptions rejects bad configuration before any row is touched.
func checkOptions(opts domain.Options) error {
	if err := validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return perr.WithField(
				perr.Usagef("invalid option %s: failed %q constraint", fe.Field(), fe.Tag()),
				fe.Field(),
			)
		}
		return perr.Wrap(err, perr.ErrorCodeUsage, "invalid options")
	}
	return nil
}

// Run evaluates rows against opts. Groups are independent, so they are
// fanned out to a bounded worker pool; results land in an index-addressed
// slice and are merged in group order, never completion order, keeping the
// output deterministic.
func (s *Service) Run(ctx context.Context, rows []series.Row, opts domain.Options, meta domain.RunMeta) (*domain.Result, error) {
	if err := checkOptions(opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// run id ties log lines from one invocation together
	runID := uuid.NewString()

	cfg := detector.Config{
		Window:     time.Duration(opts.WindowDays) * 24 * time.Hour,
		Threshold:  opts.Threshold,
		MinAmount:  opts.MinAmount,
		MinPercent: opts.MinPercent,
		DropRatio:  opts.DropRatio,
	}

	groups := series.Group(rows)
	out := make([][]detector.Finding, len(groups))

	sem := make(chan struct{}, opts.Workers)
	wg := sync.WaitGroup{}
	for i := range groups {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			out[i] = detector.Detect(groups[i], cfg)
		}(i)
	}
	wg.Wait()

	anomalies := make([]domain.Anomaly, 0)
	for _, findings := range out {
		for _, f := range findings {
			anomalies = append(anomalies, domain.Anomaly{
				Timestamp:   f.Timestamp,
				Group:       f.Group,
				Baseline:    f.Baseline,
				Current:     f.Current,
				Delta:       f.Delta,
				DeltaPct:    f.DeltaPct,
				Severity:    f.Severity,
				AnomalyType: f.Type,
			})
		}
	}

	s.log.Debug().
		Str("run_id", runID).
		Int("rows", len(rows)).
		Int("groups", len(groups)).
		Int("anomalies", len(anomalies)).
		Msg("detection run complete")

	return &domain.Result{
		SchemaVersion: domain.SchemaVersion,
		Metadata: domain.Metadata{
			GeneratedAt: meta.GeneratedAt.UTC(),
			InputFile:   meta.InputFile,
			WindowDays:  opts.WindowDays,
			Threshold:   opts.Threshold,
			GroupBy:     opts.GroupBy,
		},
		Summary:   summarize(anomalies),
		Anomalies: anomalies,
	}, nil
}

// Trends summarizes each group's series; short series are skipped.
func (s *Service) Trends(ctx context.Context, rows []series.Row) ([]trend.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return trend.AnalyzeAll(series.Group(rows)), nil
}

// summarize is a pure reduction over the finding set.
func summarize(anomalies []domain.Anomaly) domain.Summary {
	groups := make(map[string]struct{}, len(anomalies))
	maxPct := 0.0
	for _, a := range anomalies {
		groups[a.Group] = struct{}{}
		if a.DeltaPct != nil {
			if pct := math.Abs(*a.DeltaPct); pct > maxPct {
				maxPct = pct
			}
		}
	}
	return domain.Summary{
		TotalAnomalies: len(anomalies),
		GroupsImpacted: len(groups),
		MaxDeltaPct:    maxPct,
	}
}
