package emit

import (
	"surveyprep/domain/core"
	"surveyprep/internal/split"
)

// RunManifest is the audit record of one preparation run. The split is
// random per run, so the manifest carries everything needed to reproduce it:
// the seed, the ratio, and the hash of the column table in effect.
type RunManifest struct {
	RunID        core.RunID       `json:"run_id"`
	CreatedAt    core.Timestamp   `json:"created_at"`
	SchemaFile   string           `json:"schema_file"`
	DataFile     string           `json:"data_file"`
	ColumnCount  int              `json:"column_count"`
	RowCount     int              `json:"row_count"`
	CellsCleaned int              `json:"cells_cleaned"`
	TableHash    core.TableHash   `json:"column_table_hash"`
	HeaderHash   core.Hash        `json:"header_hash"`
	Split        split.Statistics `json:"split"`
}

// NewRunManifest creates a manifest for the current run.
func NewRunManifest(schemaFile, dataFile string) *RunManifest {
	return &RunManifest{
		RunID:      core.NewRunID(),
		CreatedAt:  core.Now(),
		SchemaFile: schemaFile,
		DataFile:   dataFile,
	}
}

// Validate checks that the manifest is complete before it is written.
func (m *RunManifest) Validate() error {
	if core.ID(m.RunID).IsEmpty() {
		return core.NewInvalidConfigError("run_manifest", "run_id cannot be empty")
	}
	if m.TableHash.String() == "" {
		return core.NewInvalidConfigError("run_manifest", "column_table_hash cannot be empty")
	}
	if m.ColumnCount <= 0 {
		return core.NewInvalidConfigError("run_manifest", "column_count must be positive")
	}
	return nil
}
