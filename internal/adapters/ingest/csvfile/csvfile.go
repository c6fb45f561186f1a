// Package csvfile loads and validates tabular metric rows from CSV files.
//
// Validation is strict: a single bad row fails the whole load, so the
// detection output is never built on silently dropped data.
package csvfile

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"watchdog/internal/core/series"
	perr "watchdog/internal/platform/errors"
)

// valueCandidates are tried in order when no value column is configured.
var valueCandidates = []string{"cost", "unblended_cost", "amount"}

// timeLayouts are tried in order when parsing the time column.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Options maps CSV columns onto the row model. Zero values pick the
// documented defaults.
type Options struct {
	TimeColumn  string // default "date"
	ValueColumn string // default: first of cost, unblended_cost, amount
	GroupColumn string // default "service"
}

func (o Options) withDefaults() Options {
	if o.TimeColumn == "" {
		o.TimeColumn = "date"
	}
	if o.GroupColumn == "" {
		o.GroupColumn = "service"
	}
	return o
}

// Load reads rows from r in input order. The name is used in error
// messages only.
func Load(r io.Reader, name string, opts Options) ([]series.Row, error) {
	opts = opts.withDefaults()

	// tolerate a UTF-8 BOM from spreadsheet exports
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, perr.InputFilef("%s: reading header: %v", name, err)
	}

	cols, err := mapColumns(header, name, opts)
	if err != nil {
		return nil, err
	}

	var rows []series.Row
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, perr.Schemaf("%s: line %d: %v", name, line, err)
		}

		ts, err := parseTime(rec[cols.time])
		if err != nil {
			return nil, perr.Schemaf("%s: line %d: column %q: unparseable timestamp %q", name, line, opts.TimeColumn, rec[cols.time])
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.value]), 64)
		if err != nil {
			return nil, perr.Schemaf("%s: line %d: column %q: non-numeric value %q", name, line, header[cols.value], rec[cols.value])
		}
		// ParseFloat accepts NaN and Inf spellings; a single one would
		// poison the group's baseline sums
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, perr.Schemaf("%s: line %d: column %q: non-finite value %q", name, line, header[cols.value], rec[cols.value])
		}

		rows = append(rows, series.Row{
			Timestamp: ts,
			Group:     strings.TrimSpace(rec[cols.group]),
			Value:     val,
		})
	}
	return rows, nil
}

// LoadFile opens path and loads its rows.
func LoadFile(path string, opts Options) ([]series.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.InputFilef("open %s: %v", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return Load(f, path, opts)
}

type columnIdx struct {
	time  int
	value int
	group int
}

// mapColumns resolves the configured column names against the header,
// case-insensitively. A column the caller named but the file lacks is a
// usage error; a file carrying none of the default value candidates is a
// schema error in the file itself.
func mapColumns(header []string, name string, opts Options) (columnIdx, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	find := func(col string) (int, bool) {
		i, ok := idx[strings.ToLower(col)]
		return i, ok
	}

	var cols columnIdx
	var ok bool

	if cols.time, ok = find(opts.TimeColumn); !ok {
		return cols, perr.Usagef("%s: time column %q not found (header: %s)", name, opts.TimeColumn, strings.Join(header, ", "))
	}
	if cols.group, ok = find(opts.GroupColumn); !ok {
		return cols, perr.Usagef("%s: group column %q not found (header: %s)", name, opts.GroupColumn, strings.Join(header, ", "))
	}

	if opts.ValueColumn != "" {
		if cols.value, ok = find(opts.ValueColumn); !ok {
			return cols, perr.Usagef("%s: value column %q not found (header: %s)", name, opts.ValueColumn, strings.Join(header, ", "))
		}
		return cols, nil
	}
	for _, cand := range valueCandidates {
		if cols.value, ok = find(cand); ok {
			return cols, nil
		}
	}
	return cols, perr.Schemaf("%s: no value column; expected one of %s", name, strings.Join(valueCandidates, ", "))
}

// parseTime normalizes every accepted layout to UTC.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
