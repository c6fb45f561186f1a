package domain

import (
	"context"

	"watchdog/internal/core/series"
	"watchdog/internal/core/trend"
)

// RunnerPort is the external port of the detect service.
type RunnerPort interface {
	// Run evaluates rows against opts and returns the full Result.
	Run(ctx context.Context, rows []series.Row, opts Options, meta RunMeta) (*Result, error)

	// Trends summarizes per-group direction and volatility for the same
	// row set, in group-lexicographic order.
	Trends(ctx context.Context, rows []series.Row) ([]trend.Summary, error)
}
