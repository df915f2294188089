package statsapi

// Table is one tabular dataset returned by the stats provider: an ordered
// list of column names plus positional rows. Tables are built fresh per call
// and never mutated after decoding.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Records converts up to maxRows rows into column→value maps, preserving
// row order. maxRows <= 0 means all rows. Short rows are padded with nils so
// every record carries every column.
func (t Table) Records(maxRows int) []map[string]any {
	n := len(t.Rows)
	if maxRows > 0 && n > maxRows {
		n = maxRows
	}
	out := make([]map[string]any, 0, n)
	for _, row := range t.Rows[:n] {
		rec := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = nil
			}
		}
		out = append(out, rec)
	}
	return out
}

// FirstRecord returns the first row as a record, or nil for an empty table.
func (t Table) FirstRecord() map[string]any {
	recs := t.Records(1)
	if len(recs) == 0 {
		return nil
	}
	return recs[0]
}

// ColumnIndex returns the position of col in the table, or -1.
func (t Table) ColumnIndex(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}
