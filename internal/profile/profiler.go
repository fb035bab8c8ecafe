// Package profile computes per-column summary statistics over a cleaned
// dataset. The profile is advisory output: it never gates the pipeline.
package profile

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"surveyprep/domain/column"
	"surveyprep/domain/table"
)

// ColumnProfile summarizes one column.
type ColumnProfile struct {
	Name          string          `json:"name"`
	Bucket        string          `json:"bucket"`
	MissingCount  int             `json:"missing_count"`
	MissingRate   float64         `json:"missing_rate"`
	DistinctCount int             `json:"distinct_count"`
	Numeric       *NumericSummary `json:"numeric,omitempty"`
}

// NumericSummary holds distribution statistics for numerical columns,
// computed over non-missing cells only.
type NumericSummary struct {
	Count    int     `json:"count"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Build profiles every column in header order.
func Build(ds *table.Dataset, cls *column.Classification) ([]ColumnProfile, error) {
	profiles := make([]ColumnProfile, 0, ds.NumColumns())

	for col, name := range ds.Headers() {
		spec, ok := cls.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("column %q has no classification", name)
		}

		p := ColumnProfile{Name: name, Bucket: string(spec.Bucket)}
		distinct := make(map[string]struct{})
		var numeric []float64

		for row := 0; row < ds.NumRows(); row++ {
			v := ds.Cell(row, col)
			if v.IsMissing() {
				p.MissingCount++
				continue
			}
			distinct[v.Render()] = struct{}{}
			if v.IsNumeric() {
				numeric = append(numeric, v.AsFloat64())
			}
		}

		p.DistinctCount = len(distinct)
		if ds.NumRows() > 0 {
			p.MissingRate = float64(p.MissingCount) / float64(ds.NumRows())
		}

		if spec.Bucket == column.BucketNumerical && len(numeric) > 0 {
			summary, err := summarize(numeric)
			if err != nil {
				return nil, fmt.Errorf("profile column %q: %w", name, err)
			}
			p.Numeric = summary
		}

		profiles = append(profiles, p)
	}
	return profiles, nil
}

func summarize(xs []float64) (*NumericSummary, error) {
	min, err := stats.Min(xs)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(xs)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(xs)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(xs)
	if err != nil {
		return nil, err
	}
	stdDev, err := stats.StandardDeviation(xs)
	if err != nil {
		return nil, err
	}

	summary := &NumericSummary{
		Count:  len(xs),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
	}

	if quartiles, err := stats.Quartile(xs); err == nil {
		summary.Q1 = quartiles.Q1
		summary.Q3 = quartiles.Q3
	}

	// Higher moments need at least a few points to mean anything.
	if len(xs) >= 3 {
		summary.Skewness = stat.Skew(xs, nil)
		summary.Kurtosis = stat.ExKurtosis(xs, nil)
	}

	return summary, nil
}
