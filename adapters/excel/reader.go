// Package excel reads survey responses from an .xlsx export. The sheet rows
// are typed through the same coercion path as the CSV input, so the two
// formats are interchangeable upstream of the pipeline.
package excel

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"surveyprep/adapters/csvio"
	"surveyprep/domain/core"
	"surveyprep/domain/table"
)

// Default sheet for survey exports.
const dataSheet = "Sheet1"

// ReadDataset reads the first sheet against a canonical header list.
func ReadDataset(path string, headers []string) (*table.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, core.NewMissingInputError(path, "download the survey export (.xlsx) into the workspace directory")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(dataSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", dataSheet, err)
	}

	// excelize drops trailing empty cells; pad rows back out to the header
	// width before coercion.
	padded := make([][]string, 0, len(rows))
	for i, row := range rows {
		if len(row) > len(headers) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d columns", i, len(row), len(headers))
		}
		for len(row) < len(headers) {
			row = append(row, "")
		}
		padded = append(padded, row)
	}

	return csvio.BuildDataset(padded, headers)
}
