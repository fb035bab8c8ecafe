package table

import (
	"fmt"
)

// Dataset is an in-memory table: an ordered header list plus rows of typed
// cells. Every row covers every column. The whole pipeline works on one
// Dataset at a time, single-threaded, so there is no locking here.
type Dataset struct {
	headers []string
	index   map[string]int
	rows    [][]Value
}

// NewDataset builds a dataset and checks the row shape against the header.
func NewDataset(headers []string, rows [][]Value) (*Dataset, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := index[h]; dup {
			return nil, fmt.Errorf("duplicate column name %q", h)
		}
		index[h] = i
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d columns", i, len(row), len(headers))
		}
	}
	return &Dataset{headers: headers, index: index, rows: rows}, nil
}

// Headers returns the ordered column names. Callers must not mutate it.
func (d *Dataset) Headers() []string { return d.headers }

// NumRows returns the row count.
func (d *Dataset) NumRows() int { return len(d.rows) }

// NumColumns returns the column count.
func (d *Dataset) NumColumns() int { return len(d.headers) }

// ColumnIndex returns the position of a column by name.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Cell returns the value at (row, col).
func (d *Dataset) Cell(row, col int) Value { return d.rows[row][col] }

// SetCell replaces the value at (row, col).
func (d *Dataset) SetCell(row, col int, v Value) { d.rows[row][col] = v }

// Row returns one row. Callers must not mutate it.
func (d *Dataset) Row(i int) []Value { return d.rows[i] }

// Column collects all values of one column in row order.
func (d *Dataset) Column(name string) ([]Value, bool) {
	col, ok := d.index[name]
	if !ok {
		return nil, false
	}
	out := make([]Value, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[col]
	}
	return out, true
}

// Subset builds a new dataset from a selection of row indices. The rows are
// shared, not copied; the pipeline never mutates cells after cleaning.
func (d *Dataset) Subset(rowIdx []int) *Dataset {
	rows := make([][]Value, 0, len(rowIdx))
	for _, i := range rowIdx {
		rows = append(rows, d.rows[i])
	}
	return &Dataset{headers: d.headers, index: d.index, rows: rows}
}
