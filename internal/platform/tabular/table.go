// Package tabular decodes user-supplied delimited text and workbooks into
// a rectangular table of strings.
package tabular

import "strings"

// Table is a header plus data rows. Every row has len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t Table) NumRows() int {
	return len(t.Rows)
}

func (t Table) NumColumns() int {
	return len(t.Columns)
}

// ColumnIndex returns the position of name, or -1.
func (t Table) ColumnIndex(name string) int {
	for idx, col := range t.Columns {
		if col == name {
			return idx
		}
	}
	return -1
}

func (t Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Value returns the raw cell at row for column name. ok is false when the
// column does not exist or the row is out of range.
func (t Table) Value(row int, name string) (string, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return t.Rows[row][idx], true
}

// Column returns every cell of column name in row order, or nil.
func (t Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// IsMissing reports whether a cell should be treated as absent: empty
// after trimming, or one of the null spellings spreadsheet exports use.
func IsMissing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "nan", "null", "none", "n/a", "na", "#n/a":
		return true
	default:
		return false
	}
}
