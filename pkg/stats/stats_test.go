package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestVarianceAndStd(t *testing.T) {
	// Population variance of 2, 4, 4, 4, 5, 5, 7, 9 is 4.
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 4, Variance(x), 1e-9)
	assert.InDelta(t, 2, Std(x), 1e-9)
	assert.Equal(t, 0.0, Variance(nil))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 0.0, Median(nil))

	// Median must not reorder its input.
	x := []float64{3, 1, 2}
	Median(x)
	assert.Equal(t, []float64{3, 1, 2}, x)
}

func TestMode(t *testing.T) {
	assert.Equal(t, 4.0, Mode([]float64{4, 1, 4, 2}))
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 7, 2})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)
}

func TestPercentile(t *testing.T) {
	x := []float64{10, 20, 30, 40, 50}
	assert.Equal(t, 10.0, Percentile(x, 0))
	assert.Equal(t, 50.0, Percentile(x, 100))
	assert.Equal(t, 30.0, Percentile(x, 50))
	assert.InDelta(t, 20.0, Percentile(x, 25), 1e-9)
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1, Correlation(x, []float64{2, 4, 6, 8}), 1e-9)
	assert.InDelta(t, -1, Correlation(x, []float64{8, 6, 4, 2}), 1e-9)
	// Zero variance yields 0 rather than NaN.
	assert.Equal(t, 0.0, Correlation(x, []float64{5, 5, 5, 5}))
}

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}
	assert.InDelta(t, 2*Variance(x), Covariance(x, y), 1e-9)
	assert.Equal(t, 0.0, Covariance(x, []float64{1}))
}
