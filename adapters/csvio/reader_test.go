package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyprep/domain/core"
	"surveyprep/domain/table"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadHeader(t *testing.T) {
	path := writeFile(t, "schema.csv", "Column,QuestionText\nRespondent,Randomized respondent ID\nCountry,Where do you live?\nConvertedSalary,Annual salary in USD\n")

	headers, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Respondent", "Country", "ConvertedSalary"}, headers)
}

func TestReadHeaderMissingFile(t *testing.T) {
	_, err := ReadHeader(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, core.IsMissingInput(err))
	assert.Contains(t, err.Error(), "download", "error must carry a remediation hint")
}

func TestReadHeaderRejectsEmptySchema(t *testing.T) {
	path := writeFile(t, "schema.csv", "Column,QuestionText\n")
	_, err := ReadHeader(path)
	require.Error(t, err)
	assert.True(t, core.IsSchemaMismatch(err))
}

func TestReadDatasetHeaderless(t *testing.T) {
	headers := []string{"Respondent", "Country", "ConvertedSalary"}
	path := writeFile(t, "data.csv", "1,Canada,65000\n2,Germany,NA\n")

	ds, err := ReadDataset(path, headers)
	require.NoError(t, err)
	require.Equal(t, 2, ds.NumRows())

	assert.True(t, ds.Cell(0, 0).IsNumeric())
	assert.Equal(t, "Canada", ds.Cell(0, 1).AsString())
	assert.True(t, ds.Cell(1, 2).IsMissing())
}

func TestReadDatasetSkipsMatchingHeaderRow(t *testing.T) {
	headers := []string{"Respondent", "Country", "ConvertedSalary"}
	path := writeFile(t, "data.csv", "Respondent,Country,ConvertedSalary\n1,Canada,65000\n")

	ds, err := ReadDataset(path, headers)
	require.NoError(t, err)
	require.Equal(t, 1, ds.NumRows())
	assert.Equal(t, 1.0, ds.Cell(0, 0).AsFloat64())
}

func TestReadDatasetRejectsShortRow(t *testing.T) {
	headers := []string{"Respondent", "Country", "ConvertedSalary"}
	path := writeFile(t, "data.csv", "1,Canada\n")

	_, err := ReadDataset(path, headers)
	assert.Error(t, err)
}

func TestWriteDatasetRoundTrip(t *testing.T) {
	headers := []string{"Respondent", "Country", "ConvertedSalary"}
	rows := [][]table.Value{
		{table.Coerce("1"), table.Coerce("Canada"), table.Coerce("65000")},
		{table.Coerce("2"), table.Coerce("NA"), table.Coerce("NA")},
	}
	ds, err := table.NewDataset(headers, rows)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clean_input", "train.csv")
	require.NoError(t, WriteDataset(path, ds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,Canada,65000\n2,,\n", string(data), "header-less output, missing cells empty")
}

func TestBuildDatasetPadsNothing(t *testing.T) {
	headers := []string{"A", "B"}
	_, err := BuildDataset([][]string{{"1"}}, headers)
	assert.Error(t, err, "short records are the caller's problem")
}
