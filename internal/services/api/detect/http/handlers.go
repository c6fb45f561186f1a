// Package http exposes detection over HTTP for callers that post CSV
// payloads instead of running the CLI.
package http

import (
	"net/http"
	"strings"
	"time"

	"watchdog/internal/adapters/ingest/csvfile"
	"watchdog/internal/modkit/httpkit"
	"watchdog/internal/services/detect/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Runner   domain.RunnerPort
	Defaults domain.Options
}

type handlers struct {
	deps Deps
}

// Register mounts the detect routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.PostJSON(r, "/run", h.run)
	httpkit.PostJSON(r, "/trends", h.trends)
}

// RunRequest carries inline CSV plus per-request option overrides. Zero
// fields fall back to the server defaults.
type RunRequest struct {
	CSV         string  `json:"csv" validate:"required"`
	TimeColumn  string  `json:"time_column"`
	ValueColumn string  `json:"value_column"`
	GroupBy     string  `json:"group_by"`
	WindowDays  int     `json:"window_days" validate:"gte=0"`
	Threshold   float64 `json:"threshold" validate:"gte=0"`
	MinAmount   float64 `json:"min_amount" validate:"gte=0"`
	MinPercent  float64 `json:"min_percent" validate:"gte=0"`
}

// TrendsRequest carries inline CSV and column mapping only.
type TrendsRequest struct {
	CSV         string `json:"csv" validate:"required"`
	TimeColumn  string `json:"time_column"`
	ValueColumn string `json:"value_column"`
	GroupBy     string `json:"group_by"`
}

func (req RunRequest) options(defaults domain.Options) domain.Options {
	opts := defaults
	if req.GroupBy != "" {
		opts.GroupBy = req.GroupBy
	}
	if req.WindowDays != 0 {
		opts.WindowDays = req.WindowDays
	}
	if req.Threshold != 0 {
		opts.Threshold = req.Threshold
	}
	if req.MinAmount != 0 {
		opts.MinAmount = req.MinAmount
	}
	if req.MinPercent != 0 {
		opts.MinPercent = req.MinPercent
	}
	return opts
}

func columns(timeCol, valueCol, groupCol string) csvfile.Options {
	return csvfile.Options{
		TimeColumn:  timeCol,
		ValueColumn: valueCol,
		GroupColumn: groupCol,
	}
}

func (h *handlers) run(r *http.Request, req RunRequest) (any, error) {
	opts := req.options(h.deps.Defaults)
	rows, err := csvfile.Load(strings.NewReader(req.CSV), "request", columns(req.TimeColumn, req.ValueColumn, opts.GroupBy))
	if err != nil {
		return nil, err
	}

	res, err := h.deps.Runner.Run(r.Context(), rows, opts, domain.RunMeta{
		InputFile:   "inline",
		GeneratedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (h *handlers) trends(r *http.Request, req TrendsRequest) (any, error) {
	rows, err := csvfile.Load(strings.NewReader(req.CSV), "request", columns(req.TimeColumn, req.ValueColumn, req.GroupBy))
	if err != nil {
		return nil, err
	}
	return h.deps.Runner.Trends(r.Context(), rows)
}
