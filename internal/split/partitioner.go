// Package split assigns rows to train and eval partitions.
package split

import (
	"math/rand"
	"time"

	"surveyprep/domain/core"
	"surveyprep/domain/table"
)

// Partitioner draws one independent Bernoulli sample per row: train with
// probability TrainRatio, eval otherwise. Partitions are disjoint and cover
// the row set. The draw is seeded so a run can be reproduced from its
// manifest; when the caller passes seed 0 a time-derived seed is used and
// recorded instead.
type Partitioner struct {
	trainRatio float64
	seed       int64
}

// Result is the outcome of one split.
type Result struct {
	Train *table.Dataset
	Eval  *table.Dataset
	Stats Statistics
}

// Statistics provides metadata about the partitioning
type Statistics struct {
	TotalRows     int     `json:"total_rows"`
	TrainRows     int     `json:"train_rows"`
	EvalRows      int     `json:"eval_rows"`
	TrainRatio    float64 `json:"train_ratio"`
	RealizedRatio float64 `json:"realized_ratio"`
	Seed          int64   `json:"seed"`
}

// New creates a partitioner. The ratio must lie strictly between 0 and 1.
func New(trainRatio float64, seed int64) (*Partitioner, error) {
	if trainRatio <= 0 || trainRatio >= 1 {
		return nil, core.NewInvalidConfigError("train ratio", "must be strictly between 0 and 1")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Partitioner{trainRatio: trainRatio, seed: seed}, nil
}

// Seed returns the seed in effect, for the run manifest.
func (p *Partitioner) Seed() int64 { return p.seed }

// Split partitions the dataset rows. Row order inside each partition follows
// the input order.
func (p *Partitioner) Split(ds *table.Dataset) *Result {
	rng := rand.New(rand.NewSource(p.seed))

	var trainIdx, evalIdx []int
	for i := 0; i < ds.NumRows(); i++ {
		if rng.Float64() < p.trainRatio {
			trainIdx = append(trainIdx, i)
		} else {
			evalIdx = append(evalIdx, i)
		}
	}

	stats := Statistics{
		TotalRows:  ds.NumRows(),
		TrainRows:  len(trainIdx),
		EvalRows:   len(evalIdx),
		TrainRatio: p.trainRatio,
		Seed:       p.seed,
	}
	if stats.TotalRows > 0 {
		stats.RealizedRatio = float64(stats.TrainRows) / float64(stats.TotalRows)
	}

	return &Result{
		Train: ds.Subset(trainIdx),
		Eval:  ds.Subset(evalIdx),
		Stats: stats,
	}
}
