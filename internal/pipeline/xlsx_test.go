package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbookFromCSV materializes simple comma-separated rows as an .xlsx
// workbook, Sheet1, for the excel input path.
func writeWorkbookFromCSV(t *testing.T, path, csvContent string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	lines := strings.Split(strings.TrimRight(csvContent, "\n"), "\n")
	for i, line := range lines {
		cells := strings.Split(line, ",")
		row := make([]interface{}, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		start, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", start, &row))
	}
	require.NoError(t, f.SaveAs(path))
}
