// Package clean applies the per-column cleaning rules derived from a
// validated classification.
package clean

import (
	"go.uber.org/zap"

	"surveyprep/domain/column"
	"surveyprep/domain/table"
	"surveyprep/internal/normalize"
)

// Cleaner rewrites the columns that need it, cell by cell, in place. Two rule
// kinds exist: ascii stripping for columns flagged in the table, and
// multi-label token joining for every multi-label column. When both apply,
// ascii stripping runs first so stripped runes cannot reintroduce delimiter
// ambiguity. Columns outside both rule sets are never touched.
type Cleaner struct {
	cls *column.Classification
	log *zap.Logger
}

// New builds a cleaner for one classification.
func New(cls *column.Classification, log *zap.Logger) *Cleaner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cleaner{cls: cls, log: log}
}

// Clean mutates the dataset in place and reports how many cells changed.
// Shape is preserved: same rows, same columns, values changed only per rule.
func (c *Cleaner) Clean(ds *table.Dataset) int {
	changed := 0
	for col, name := range ds.Headers() {
		spec, ok := c.cls.Lookup(name)
		if !ok {
			// Classify already guarantees coverage; an unknown column here
			// would mean the dataset was rebuilt after classification.
			continue
		}
		ascii := spec.AsciiFilter
		multi := spec.Bucket == column.BucketMultiLabel
		if !ascii && !multi {
			continue
		}

		colChanged := 0
		for row := 0; row < ds.NumRows(); row++ {
			v := ds.Cell(row, col)
			cleaned := v
			if ascii {
				cleaned = normalize.StripNonASCII(cleaned)
			}
			if multi {
				cleaned = normalize.JoinMultiLabelTokens(cleaned)
			}
			if cleaned != v {
				ds.SetCell(row, col, cleaned)
				colChanged++
			}
		}
		if colChanged > 0 {
			c.log.Debug("cleaned column",
				zap.String("column", name),
				zap.String("bucket", string(spec.Bucket)),
				zap.Bool("ascii_filter", ascii),
				zap.Int("cells_changed", colChanged))
		}
		changed += colChanged
	}
	return changed
}
