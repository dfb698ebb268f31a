package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegressionMetrics(t *testing.T) {
	yTrue := []float64{1, 2, 3}
	yPred := []float64{1, 2, 5}

	assert.InDelta(t, 4.0/3, MSE(yTrue, yPred), 1e-9)
	assert.InDelta(t, 2.0/3, MAE(yTrue, yPred), 1e-9)
	assert.InDelta(t, 1.1547, RMSE(yTrue, yPred), 1e-4)
}

func TestR2(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}

	assert.Equal(t, 1.0, R2(yTrue, yTrue))
	// A constant target has no variance to explain.
	assert.Equal(t, 0.0, R2([]float64{2, 2, 2}, []float64{1, 2, 3}))
	// Predicting the mean scores zero.
	assert.InDelta(t, 0, R2(yTrue, []float64{2.5, 2.5, 2.5, 2.5}), 1e-9)
}

func TestMetricsEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, MSE(nil, nil))
	assert.Equal(t, 0.0, MAE(nil, nil))
	assert.Equal(t, 0.0, R2(nil, nil))
}
