package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyprep/domain/core"
)

const testTableYAML = `
target: ConvertedSalary
key:
  - Respondent
numerical:
  - AssessJob1
single_label:
  - Country
  - Currency
multi_label:
  - DevType
ascii_filter:
  - Currency
`

func mustTable(t *testing.T, yamlSrc string) *Table {
	t.Helper()
	table, err := ParseTable([]byte(yamlSrc))
	require.NoError(t, err)
	return table
}

func TestParseTable(t *testing.T) {
	table := mustTable(t, testTableYAML)

	assert.Equal(t, "ConvertedSalary", table.Target())
	assert.Equal(t, 6, table.Len())

	spec, ok := table.Lookup("Currency")
	require.True(t, ok)
	assert.Equal(t, BucketSingleLabel, spec.Bucket)
	assert.True(t, spec.AsciiFilter, "Currency must carry the ascii filter flag")

	spec, ok = table.Lookup("Country")
	require.True(t, ok)
	assert.False(t, spec.AsciiFilter)

	assert.False(t, table.Hash().String() == "", "table hash must be computed at parse time")
}

func TestParseTableRejectsDoubleRegistration(t *testing.T) {
	_, err := ParseTable([]byte(`
target: Salary
numerical: [Age]
single_label: [Age]
`))
	require.Error(t, err)
	assert.True(t, core.IsInvalidConfig(err))
	assert.Contains(t, err.Error(), "Age")
}

func TestParseTableRejectsMissingTarget(t *testing.T) {
	_, err := ParseTable([]byte(`
key: [Respondent]
`))
	require.Error(t, err)
	assert.True(t, core.IsInvalidConfig(err))
}

func TestParseTableRejectsUnknownAsciiFilterColumn(t *testing.T) {
	_, err := ParseTable([]byte(`
target: Salary
ascii_filter: [Ghost]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost")
}

func TestClassifyCoversEveryHeaderExactlyOnce(t *testing.T) {
	table := mustTable(t, testTableYAML)
	headers := []string{"Respondent", "Country", "Currency", "DevType", "AssessJob1", "ConvertedSalary"}

	cls, err := Classify(headers, table)
	require.NoError(t, err)

	assert.Equal(t, headers, cls.Headers())
	assert.Len(t, cls.Specs(), len(headers))
	assert.Equal(t, "ConvertedSalary", cls.Target())

	counts := cls.CountByBucket()
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(headers), total, "bucket counts must sum to the header count")
	assert.Equal(t, 1, counts[BucketTarget], "exactly one target column")
	assert.Equal(t, 1, counts[BucketKey])
	assert.Equal(t, 2, counts[BucketSingleLabel])
}

func TestClassifyRejectsUnassignedHeader(t *testing.T) {
	table := mustTable(t, testTableYAML)
	headers := []string{"Respondent", "Country", "Currency", "DevType", "AssessJob1", "ConvertedSalary", "Hobby"}

	_, err := Classify(headers, table)
	require.Error(t, err)
	assert.True(t, core.IsSchemaMismatch(err))
	assert.Contains(t, err.Error(), "Hobby")
}

func TestClassifyRejectsStaleRegistration(t *testing.T) {
	table := mustTable(t, testTableYAML)
	// DevType registered but absent from the dataset header.
	headers := []string{"Respondent", "Country", "Currency", "AssessJob1", "ConvertedSalary"}

	_, err := Classify(headers, table)
	require.Error(t, err)
	assert.True(t, core.IsSchemaMismatch(err))
	assert.Contains(t, err.Error(), "DevType")
}

func TestClassifyRejectsDuplicateHeader(t *testing.T) {
	table := mustTable(t, testTableYAML)
	headers := []string{"Respondent", "Respondent", "Country", "Currency", "DevType", "AssessJob1", "ConvertedSalary"}

	_, err := Classify(headers, table)
	require.Error(t, err)
	assert.True(t, core.IsSchemaMismatch(err))
}

func TestClassifyRejectsEmptyHeader(t *testing.T) {
	table := mustTable(t, testTableYAML)
	_, err := Classify(nil, table)
	require.Error(t, err)
	assert.True(t, core.IsSchemaMismatch(err))
}
