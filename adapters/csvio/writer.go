package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"surveyprep/domain/table"
)

// WriteDataset writes a partition as a header-less CSV, original column
// order, missing cells rendered empty.
func WriteDataset(path string, ds *table.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	record := make([]string, ds.NumColumns())
	for i := 0; i < ds.NumRows(); i++ {
		row := ds.Row(i)
		for j, v := range row {
			record[j] = v.Render()
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
