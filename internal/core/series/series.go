// Package series defines the row model shared by ingest and detection and
// the grouping step that partitions rows into per-group time series.
package series

import (
	"sort"
	"time"
)

// Row is one observation: a value for a group at a point in time.
type Row struct {
	Timestamp time.Time
	Group     string
	Value     float64
}

// Series is all rows for a single group, ordered by timestamp ascending.
type Series struct {
	Group string
	Rows  []Row
}

// Group partitions rows by group key and sorts each partition by timestamp.
// Rows sharing a timestamp keep their input order relative to each other.
// Returned series are ordered lexicographically by group so downstream
// output is deterministic regardless of input order.
func Group(rows []Row) []Series {
	byGroup := make(map[string][]Row)
	for _, r := range rows {
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	keys := make([]string, 0, len(byGroup))
	for k := range byGroup {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Series, 0, len(keys))
	for _, k := range keys {
		rs := byGroup[k]
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].Timestamp.Before(rs[j].Timestamp) })
		out = append(out, Series{Group: k, Rows: rs})
	}
	return out
}
