package csvfile

import (
	"context"

	"golang.org/x/sync/errgroup"

	"watchdog/internal/core/series"
)

// LoadFiles loads several CSV files concurrently and concatenates their
// rows in argument order, so the combined input order is independent of
// which file finishes first. Any single failure aborts the whole load.
func LoadFiles(ctx context.Context, paths []string, opts Options) ([]series.Row, error) {
	perFile := make([][]series.Row, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := LoadFile(path, opts)
			if err != nil {
				return err
			}
			perFile[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []series.Row
	for _, rows := range perFile {
		all = append(all, rows...)
	}
	return all, nil
}
