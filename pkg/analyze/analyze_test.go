package analyze

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MMaikov/CarsDataset/pkg/dataset"
)

func cleanedCars() *dataset.Dataset {
	ds := dataset.New([]string{"make", "model", "year", "horsepower", "weight"})
	ds.Rows = [][]string{
		{"Toyota", "Corolla", "2005", "132", "1200"},
		{"Toyota", "Camry", "2007", "158", "1450"},
		{"Toyota", "Yaris", "2006", "106", "1050"},
		{"Audi", "A4", "2010", "210", "1500"},
		{"Audi", "A6", "2011", "290", "1700"},
		{"Lada", "Niva", "1995", "80", "1200"},
	}
	return ds
}

func TestGroupBy(t *testing.T) {
	groups, err := GroupBy(cleanedCars(), "make")
	require.NoError(t, err)

	require.Len(t, groups, 3)
	// First-appearance order.
	assert.Equal(t, "Toyota", groups[0].Key)
	assert.Equal(t, "Audi", groups[1].Key)
	assert.Equal(t, "Lada", groups[2].Key)
	assert.Equal(t, 3, groups[0].Data.Len())
	assert.Equal(t, 2, groups[1].Data.Len())
	assert.Equal(t, 1, groups[2].Data.Len())
}

func TestGroupByUnknownColumn(t *testing.T) {
	_, err := GroupBy(cleanedCars(), "color")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	rep, err := Summarize(cleanedCars(), "make", []string{"horsepower", "weight"})
	require.NoError(t, err)

	require.Len(t, rep.Groups, 3)
	toyota := rep.Groups[0]
	assert.Equal(t, "Toyota", toyota.Key)
	assert.Equal(t, 3, toyota.Count)

	require.Len(t, toyota.Columns, 2)
	hp := toyota.Columns[0]
	assert.Equal(t, "horsepower", hp.Column)
	assert.InDelta(t, 132, hp.Mean, 1e-9)
	assert.InDelta(t, 132, hp.Median, 1e-9)
	assert.Equal(t, 106.0, hp.Min)
	assert.Equal(t, 158.0, hp.Max)
	assert.False(t, math.IsNaN(hp.Std))
}

func TestSummarizeSingletonGroupReportsInsufficientData(t *testing.T) {
	rep, err := Summarize(cleanedCars(), "make", []string{"horsepower"})
	require.NoError(t, err)

	// The Lada group has one record: its std cannot be computed, but the
	// group is still summarized and the other groups are unaffected.
	lada := rep.Groups[2]
	assert.Equal(t, 1, lada.Count)
	assert.True(t, math.IsNaN(lada.Columns[0].Std))
	assert.InDelta(t, 80, lada.Columns[0].Mean, 1e-9)

	require.Len(t, rep.Insufficient, 1)
	finding := rep.Insufficient[0]
	assert.Equal(t, "Lada", finding.Group)
	assert.Equal(t, 1, finding.Count)
	assert.Contains(t, finding.Error(), "horsepower")
}

func TestSummarizeNonNumericColumn(t *testing.T) {
	_, err := Summarize(cleanedCars(), "make", []string{"model"})
	assert.Error(t, err)
}

func TestCorrelationMatrix(t *testing.T) {
	m, err := CorrelationMatrix(cleanedCars(), []string{"horsepower", "weight"})
	require.NoError(t, err)

	require.Len(t, m, 2)
	assert.Equal(t, 1.0, m[0][0])
	assert.Equal(t, 1.0, m[1][1])
	assert.Equal(t, m[0][1], m[1][0])
	// Heavier cars in this set have more horsepower.
	assert.Greater(t, m[0][1], 0.5)
}

func TestCorrelationMatrixInsufficientData(t *testing.T) {
	ds := dataset.New([]string{"make", "horsepower"})
	ds.Rows = [][]string{{"Toyota", "132"}}

	_, err := CorrelationMatrix(ds, []string{"horsepower"})
	var insufficient *InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 1, insufficient.Count)
	assert.Equal(t, 2, insufficient.Needed)
}
