// Package shape trims provider tables before they leave the server.
// Upstream payloads routinely blow past the transport's practical output
// ceiling (~25K characters), so every tabular response is column-selected,
// optionally sorted, and row-capped here.
package shape

import (
	"sort"
	"strings"

	"github.com/courtside/nba-stats-mcp/internal/statsapi"
)

// idColumns are high-cardinality identifier columns dropped by default when
// no explicit allow-list is given. They carry no statistical value and
// bloat the payload.
var idColumns = map[string]bool{
	"PLAYER_ID": true,
	"TEAM_ID":   true,
	"LEAGUE_ID": true,
	"GAME_ID":   true,
}

// Options controls one shaping pass.
type Options struct {
	// Columns, when non-nil, is an ordered allow-list: only these columns
	// are kept, in this order. Names absent from the input are silently
	// omitted. When nil, the default ID-column denylist applies instead.
	Columns []string

	// DropRanks additionally drops *_RANK columns (only meaningful without
	// an allow-list).
	DropRanks bool

	// SortBy stable-sorts rows by the named column when it exists in the
	// input. Direction defaults to descending (most relevant first).
	SortBy    string
	Ascending bool

	// MaxRows caps the output row count after sorting. <= 0 means no cap.
	MaxRows int
}

// Apply returns a new table shaped per opts. An empty input yields an empty
// output, never an error.
func Apply(t statsapi.Table, opts Options) statsapi.Table {
	keep := keepIndexes(t, opts)

	cols := make([]string, len(keep))
	for i, idx := range keep {
		cols[i] = t.Columns[idx]
	}

	rows := t.Rows
	if opts.SortBy != "" {
		if si := t.ColumnIndex(opts.SortBy); si >= 0 {
			rows = sortRows(rows, si, opts.Ascending)
		}
	}
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		rows = rows[:opts.MaxRows]
	}

	out := make([][]any, len(rows))
	for i, row := range rows {
		shaped := make([]any, len(keep))
		for j, idx := range keep {
			if idx < len(row) {
				shaped[j] = row[idx]
			}
		}
		out[i] = shaped
	}
	return statsapi.Table{Name: t.Name, Columns: cols, Rows: out}
}

// ClampRows bounds a caller-supplied row count to [lo, hi].
func ClampRows(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// keepIndexes resolves the column selection to input column positions.
func keepIndexes(t statsapi.Table, opts Options) []int {
	if opts.Columns != nil {
		keep := make([]int, 0, len(opts.Columns))
		for _, want := range opts.Columns {
			if idx := t.ColumnIndex(want); idx >= 0 {
				keep = append(keep, idx)
			}
		}
		return keep
	}
	keep := make([]int, 0, len(t.Columns))
	for i, col := range t.Columns {
		if idColumns[col] {
			continue
		}
		if opts.DropRanks && strings.HasSuffix(col, "_RANK") {
			continue
		}
		keep = append(keep, i)
	}
	return keep
}

// sortRows returns a stably sorted copy of rows by the value at column si.
// Numeric values compare numerically, everything else lexically; nils sort
// last regardless of direction.
func sortRows(rows [][]any, si int, ascending bool) [][]any {
	out := make([][]any, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a := cell(out[i], si)
		b := cell(out[j], si)
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		less, ok := numericLess(a, b)
		if !ok {
			less = toString(a) < toString(b)
		}
		if ascending {
			return less
		}
		// Descending: invert, but keep equal elements stable.
		greater, ok := numericLess(b, a)
		if !ok {
			greater = toString(b) < toString(a)
		}
		return greater
	})
	return out
}

func cell(row []any, i int) any {
	if i < len(row) {
		return row[i]
	}
	return nil
}

// numericLess compares two cells numerically when both are numbers.
// JSON decoding yields float64 for all numbers.
func numericLess(a, b any) (less, ok bool) {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return false, false
	}
	return af < bf, true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
