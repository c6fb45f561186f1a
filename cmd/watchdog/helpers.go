package main

import (
	"context"
	"io"
	"os"

	"watchdog/internal/adapters/ingest/csvfile"
	"watchdog/internal/core/series"
	perr "watchdog/internal/platform/errors"
)

// loadRows reads every input file concurrently and concatenates rows in
// argument order.
func loadRows(ctx context.Context, inputs []string, timeCol, valueCol, groupCol string) ([]series.Row, error) {
	if len(inputs) == 0 {
		return nil, perr.Usagef("at least one --input file is required")
	}
	return csvfile.LoadFiles(ctx, inputs, csvfile.Options{
		TimeColumn:  timeCol,
		ValueColumn: valueCol,
		GroupColumn: groupCol,
	})
}

// openOutput returns stdout for an empty path, otherwise the created file
// and its closer.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, perr.Wrapf(err, perr.ErrorCodeInputFile, "create output file %s", path)
	}
	return f, f.Close, nil
}
