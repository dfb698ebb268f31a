package dataset

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1200", 1200},
		{"1200.0", 1200},
		{"1,200", 1200},
		{"1,200.5", 1200.5},
		{" 42 ", 42},
		{"-3.5", -3.5},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		require.NoError(t, err, "ParseNumber(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseNumber(%q)", tt.in)
	}

	for _, bad := range []string{"N/A", "abc", "12abc", ""} {
		_, err := ParseNumber(bad)
		assert.Error(t, err, "ParseNumber(%q)", bad)
	}
}

func TestIsMissing(t *testing.T) {
	for _, s := range []string{"", "NA", "NaN", "N/A", "n/a", "null", "NULL", "-", "  "} {
		assert.True(t, IsMissing(s), "IsMissing(%q)", s)
	}
	for _, s := range []string{"0", "Toyota", "12.5"} {
		assert.False(t, IsMissing(s), "IsMissing(%q)", s)
	}
}

func TestFormatNumberRoundTrip(t *testing.T) {
	for _, v := range []float64{1200, 1200.5, 0, -3.25, 123.456} {
		got, err := ParseNumber(FormatNumber(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, "1200", FormatNumber(1200.0))
}

func TestReadCSVFrom(t *testing.T) {
	csvData := "make,model,year\nToyota,Corolla,2005\nBMW,M3\nAudi,A4,2010\n"
	ds, err := ReadCSVFrom(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, []string{"make", "model", "year"}, ds.Columns)
	// The ragged BMW row is skipped.
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"Toyota", "Corolla", "2005"}, ds.Rows[0])
	assert.Equal(t, []string{"Audi", "A4", "2010"}, ds.Rows[1])
}

func TestReadCSVFromSkipsMalformedRecords(t *testing.T) {
	csvData := "make,model,year\nToyota,Corolla,2005\nBMW,\"M\"3,2008\nAudi,A4,2010\n"
	ds, err := ReadCSVFrom(strings.NewReader(csvData))
	require.NoError(t, err)

	// The row with the stray quote is skipped, the rows after it survive.
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "Toyota", ds.Rows[0][0])
	assert.Equal(t, "Audi", ds.Rows[1][0])
}

// stuckReader yields its payload, then fails forever instead of EOF.
type stuckReader struct {
	r   io.Reader
	err error
}

func (s *stuckReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err == io.EOF {
		return n, s.err
	}
	return n, err
}

func TestReadCSVFromSurfacesReaderFailure(t *testing.T) {
	readErr := errors.New("device not ready")
	r := &stuckReader{
		r:   strings.NewReader("make,model,year\nToyota,Corolla,2005\n"),
		err: readErr,
	}
	_, err := ReadCSVFrom(r)
	require.ErrorIs(t, err, readErr, "an I/O failure is not a skippable record")
}

func TestReadCSVFromEmptyInput(t *testing.T) {
	_, err := ReadCSVFrom(strings.NewReader(""))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestWriteReadRoundTrip(t *testing.T) {
	ds := New([]string{"make", "model", "year"})
	ds.Rows = [][]string{
		{"Toyota", "Corolla", "2005"},
		{"Audi", "A4", "2010"},
	}
	path := filepath.Join(t.TempDir(), "cars.csv")
	require.NoError(t, WriteCSV(ds, path))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, ds.Columns, got.Columns)
	assert.Equal(t, ds.Rows, got.Rows)
}

func TestSchemaValidate(t *testing.T) {
	schema := CarSchema()

	err := schema.Validate([]string{"make", "model", "year", "horsepower", "displacement", "weight", "acceleration", "body_type"})
	assert.NoError(t, err)

	err = schema.Validate([]string{"make", "model"})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Error(), "year")
	assert.Contains(t, pe.Error(), "horsepower")
}

func TestNumericColumnAndMatrix(t *testing.T) {
	ds := New([]string{"make", "horsepower", "weight"})
	ds.Rows = [][]string{
		{"Toyota", "132", "1200"},
		{"Audi", "210", "1500.5"},
	}

	hp, err := ds.NumericColumn("horsepower")
	require.NoError(t, err)
	assert.Equal(t, []float64{132, 210}, hp)

	X, err := ds.Matrix([]string{"horsepower", "weight"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{132, 1200}, {210, 1500.5}}, X)

	_, err = ds.NumericColumn("make")
	assert.Error(t, err)

	_, err = ds.Matrix([]string{"missing"})
	assert.Error(t, err)
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Path: "cars.csv", Reason: "no header record"}
	assert.True(t, errors.As(error(err), new(*ParseError)))
	assert.Contains(t, err.Error(), "cars.csv")
	assert.Contains(t, err.Error(), "no header record")
}
