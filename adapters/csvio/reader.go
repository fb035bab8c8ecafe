// Package csvio reads the two source CSVs and writes the partitioned output
// CSVs. It is deliberately thin: parsing is encoding/csv, typing is
// table.Coerce, and everything else lives behind the domain boundary.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"surveyprep/domain/core"
	"surveyprep/domain/table"
)

// downloadHint is surfaced with ErrMissingInput so a fresh checkout knows
// how to obtain the survey files.
const downloadHint = "download the survey export (schema and responses CSV) into the workspace directory"

// ReadHeader reads the schema CSV: a header row followed by one row per
// column, column name in the first field. The returned list is the canonical
// column order for the whole run.
func ReadHeader(path string) ([]string, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse schema csv %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, core.NewSchemaMismatchError(fmt.Sprintf("schema csv %s has no column rows", path))
	}

	headers := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 0 || record[0] == "" {
			return nil, core.NewSchemaMismatchError(fmt.Sprintf("schema csv %s has a row without a column name", path))
		}
		headers = append(headers, record[0])
	}
	return headers, nil
}

// ReadDataset reads the data CSV against a canonical header list. The file
// may be header-less or start with a row matching the header; both forms are
// accepted. Cells are coerced once, here.
func ReadDataset(path string, headers []string) (*table.Dataset, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(headers)

	var rows [][]table.Value
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse data csv %s: %w", path, err)
		}
		if first {
			first = false
			if isHeaderRow(record, headers) {
				continue
			}
		}
		rows = append(rows, coerceRecord(record))
	}

	return table.NewDataset(headers, rows)
}

// BuildDataset types raw records against a canonical header list. The excel
// adapter feeds its sheet rows through here so both inputs coerce the same
// way.
func BuildDataset(records [][]string, headers []string) (*table.Dataset, error) {
	rows := make([][]table.Value, 0, len(records))
	for i, record := range records {
		if i == 0 && isHeaderRow(record, headers) {
			continue
		}
		if len(record) != len(headers) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d columns", i, len(record), len(headers))
		}
		rows = append(rows, coerceRecord(record))
	}
	return table.NewDataset(headers, rows)
}

func coerceRecord(record []string) []table.Value {
	row := make([]table.Value, len(record))
	for i, cell := range record {
		row[i] = table.Coerce(cell)
	}
	return row
}

func isHeaderRow(record []string, headers []string) bool {
	if len(record) != len(headers) {
		return false
	}
	for i, cell := range record {
		if cell != headers[i] {
			return false
		}
	}
	return true
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.NewMissingInputError(path, downloadHint)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
