package main

import (
	"github.com/courtside/nba-stats-mcp/internal/shape"
	"github.com/courtside/nba-stats-mcp/internal/statsapi"
)

// defaultMaxRows caps dataset records when a call site has no tighter
// budget of its own.
const defaultMaxRows = 200

// shapedRecords applies the default shaping pass (ID columns dropped, rows
// capped) and converts the table to records.
func shapedRecords(t statsapi.Table, maxRows int) []map[string]any {
	return shape.Apply(t, shape.Options{MaxRows: maxRows}).Records(0)
}

// namedDatasets assembles positional provider tables into a name→records
// map, keeping only the non-empty ones. The provider guarantees dataset
// order, not presence.
func namedDatasets(tables []statsapi.Table, names []string, maxRows int) map[string][]map[string]any {
	out := make(map[string][]map[string]any)
	for i, name := range names {
		if i >= len(tables) || tables[i].Empty() {
			continue
		}
		out[name] = shapedRecords(tables[i], maxRows)
	}
	return out
}

// tableAt returns the i-th table, or an empty one when absent.
func tableAt(tables []statsapi.Table, i int) statsapi.Table {
	if i < len(tables) {
		return tables[i]
	}
	return statsapi.Table{}
}
