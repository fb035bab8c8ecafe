package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ValueKind
	}{
		{"empty is missing", "", KindMissing},
		{"NA is missing", "NA", KindMissing},
		{"NaN is missing", "NaN", KindMissing},
		{"padded NA is missing", " NA ", KindMissing},
		{"integer is numeric", "25", KindNumeric},
		{"float is numeric", "3.14", KindNumeric},
		{"negative is numeric", "-7.5", KindNumeric},
		{"text stays text", "United Kingdom", KindText},
		{"range bucket stays text", "0-2 years", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Coerce(tt.raw).Kind)
		})
	}
}

func TestNumericKeepsLexeme(t *testing.T) {
	v := Coerce("65000")
	require.True(t, v.IsNumeric())
	assert.Equal(t, 65000.0, v.AsFloat64())
	assert.Equal(t, "65000", v.Render(), "numeric cells must round-trip byte-for-byte")
}

func TestMissingRendersEmpty(t *testing.T) {
	assert.Equal(t, "", Coerce("NA").Render())
}

func TestNewDatasetShapeValidation(t *testing.T) {
	headers := []string{"Respondent", "Country"}

	_, err := NewDataset(headers, [][]Value{{NewTextValue("x")}})
	assert.Error(t, err, "short row must be rejected")

	_, err = NewDataset([]string{"A", "A"}, nil)
	assert.Error(t, err, "duplicate column names must be rejected")

	ds, err := NewDataset(headers, [][]Value{{NewNumericValue(1), NewTextValue("Canada")}})
	require.NoError(t, err)
	assert.Equal(t, 1, ds.NumRows())
	assert.Equal(t, 2, ds.NumColumns())
}

func TestDatasetSubsetSharesHeader(t *testing.T) {
	headers := []string{"Respondent"}
	rows := [][]Value{{NewNumericValue(1)}, {NewNumericValue(2)}, {NewNumericValue(3)}}
	ds, err := NewDataset(headers, rows)
	require.NoError(t, err)

	sub := ds.Subset([]int{2, 0})
	assert.Equal(t, 2, sub.NumRows())
	assert.Equal(t, 3.0, sub.Cell(0, 0).AsFloat64())
	assert.Equal(t, 1.0, sub.Cell(1, 0).AsFloat64())
	assert.Equal(t, ds.Headers(), sub.Headers())
}
