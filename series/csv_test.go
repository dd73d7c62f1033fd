package series

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,101
2020-01-03,102`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 101, 102}, s.Values())
}

func TestLoadCSVSkipsMissingValues(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,
2020-01-06,abc
2020-01-07,104`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 102, 104}, s.Values())
}

func TestLoadCSVNamedColumn(t *testing.T) {
	csvData := `ds,Beer,Cement,Gas
2020-01-01,100,200,50
2020-01-02,110,210,55`

	opts := DefaultCSVOptions()
	opts.ValueColumn = "Cement"

	s, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 210}, s.Values())
}

func TestLoadCSVFallsBackToLastColumn(t *testing.T) {
	csvData := `"date","reading"
"2020-01-01","1.5"
"2020-01-02","2.5"`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, s.Values())
}

func TestLoadCSVNoHeaderCustomDelimiter(t *testing.T) {
	csvData := "# exported\n1;3\n2;4\n"

	opts := &CSVOptions{Delimiter: ';', SkipRows: 1}
	s, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, s.Values())
}

func TestLoadCSVNoData(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("ds,y\n2020-01-01,NA\n"), nil)
	require.ErrorIs(t, err, ErrNoData)
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, os.WriteFile(path, []byte("y\n1\n2\n3\n"), 0o600))

	s, err := LoadCSV(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), nil)
	require.Error(t, err)
}
