package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyprep/domain/core"
	"surveyprep/domain/table"
)

func datasetOfSize(t *testing.T, n int) *table.Dataset {
	t.Helper()
	rows := make([][]table.Value, n)
	for i := range rows {
		rows[i] = []table.Value{table.NewNumericValue(float64(i))}
	}
	ds, err := table.NewDataset([]string{"Respondent"}, rows)
	require.NoError(t, err)
	return ds
}

func TestNewRejectsBadRatio(t *testing.T) {
	for _, ratio := range []float64{0, 1, -0.5, 1.5} {
		_, err := New(ratio, 42)
		require.Error(t, err)
		assert.True(t, core.IsInvalidConfig(err))
	}
}

func TestSplitIsDisjointAndCovering(t *testing.T) {
	const n = 1000
	ds := datasetOfSize(t, n)

	p, err := New(0.8, 42)
	require.NoError(t, err)
	res := p.Split(ds)

	assert.Equal(t, n, res.Stats.TotalRows)
	assert.Equal(t, n, res.Train.NumRows()+res.Eval.NumRows(), "no row lost or duplicated")

	seen := make(map[float64]int, n)
	for i := 0; i < res.Train.NumRows(); i++ {
		seen[res.Train.Cell(i, 0).AsFloat64()]++
	}
	for i := 0; i < res.Eval.NumRows(); i++ {
		seen[res.Eval.Cell(i, 0).AsFloat64()]++
	}
	require.Len(t, seen, n)
	for id, count := range seen {
		assert.Equal(t, 1, count, "row %v appears %d times", id, count)
	}
}

func TestSplitSizeNearExpectation(t *testing.T) {
	const n = 10000
	ds := datasetOfSize(t, n)

	p, err := New(0.8, 7)
	require.NoError(t, err)
	res := p.Split(ds)

	// Binomial(10000, 0.8): stddev = sqrt(n*p*(1-p)) = 40; allow 5 sigma.
	assert.InDelta(t, 8000, res.Stats.TrainRows, 200)
	assert.InDelta(t, 0.8, res.Stats.RealizedRatio, 0.02)
}

func TestSplitDeterministicForSeed(t *testing.T) {
	ds := datasetOfSize(t, 500)

	p1, err := New(0.8, 1234)
	require.NoError(t, err)
	p2, err := New(0.8, 1234)
	require.NoError(t, err)

	r1 := p1.Split(ds)
	r2 := p2.Split(ds)

	require.Equal(t, r1.Train.NumRows(), r2.Train.NumRows())
	for i := 0; i < r1.Train.NumRows(); i++ {
		assert.Equal(t, r1.Train.Cell(i, 0).AsFloat64(), r2.Train.Cell(i, 0).AsFloat64())
	}
}

func TestSplitZeroSeedDerivesOne(t *testing.T) {
	p, err := New(0.8, 0)
	require.NoError(t, err)
	assert.NotZero(t, p.Seed(), "derived seed must be recorded for the manifest")
}

func TestSplitEmptyDataset(t *testing.T) {
	ds := datasetOfSize(t, 0)
	p, err := New(0.8, 42)
	require.NoError(t, err)

	res := p.Split(ds)
	assert.Equal(t, 0, res.Train.NumRows())
	assert.Equal(t, 0, res.Eval.NumRows())
	assert.Equal(t, 0.0, res.Stats.RealizedRatio)
}
