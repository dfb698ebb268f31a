package model

import (
	"errors"
	"math/rand"
	"runtime"
	"sync"

	"github.com/MMaikov/CarsDataset/pkg/loader"
	"github.com/MMaikov/CarsDataset/pkg/loss"
	"github.com/MMaikov/CarsDataset/pkg/optim"
)

// LinearRegression predicts one numeric spec field from others via
// mini-batch gradient descent.
type LinearRegression struct {
	W         []float64
	b         float64
	Lr        float64
	Epochs    int
	BatchSize int
}

// NewLinearRegression initializes weights with small random values.
func NewLinearRegression(nFeatures int, lr float64, epochs, batchSize int) *LinearRegression {
	w := make([]float64, nFeatures)
	for i := range w {
		w[i] = rand.NormFloat64() * 0.01
	}
	return &LinearRegression{W: w, Lr: lr, Epochs: epochs, BatchSize: batchSize}
}

// Predict returns predictions for each row of X, computed in parallel
// across CPU cores.
func (m *LinearRegression) Predict(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	pred := make([]float64, len(X))
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		s := w * rowsPerWorker
		e := s + rowsPerWorker
		if e > len(X) {
			e = len(X)
		}
		if s >= e {
			continue
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				sum := m.b
				for j, v := range X[i] {
					sum += m.W[j] * v
				}
				pred[i] = sum
			}
		}(s, e)
	}
	wg.Wait()
	return pred
}

// Fit trains for Epochs passes over X. Each pass re-batches the data so
// the training loop stays a plain channel consumer.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("training data cannot be empty")
	}
	if len(X) != len(y) {
		return errors.New("feature rows and targets differ in length")
	}
	if len(m.W) != len(X[0]) {
		return errors.New("feature count mismatch between model and data")
	}
	opt := optim.NewSGD(m.Lr)
	for ep := 0; ep < m.Epochs; ep++ {
		for batch := range loader.Batches(X, y, m.BatchSize) {
			m.step(batch, opt)
		}
	}
	return nil
}

func (m *LinearRegression) step(batch loader.Batch, opt *optim.SGD) {
	yhat := m.Predict(batch.X)
	_, dy := loss.MSE(batch.Y, yhat)
	gW := make([]float64, len(m.W))
	gb := 0.0
	for i, row := range batch.X {
		d := dy[i]
		for j, xij := range row {
			gW[j] += d * xij
		}
		gb += d
	}
	opt.Step(m.W, gW)
	m.b -= m.Lr * gb
}

// Bias returns the fitted intercept.
func (m *LinearRegression) Bias() float64 { return m.b }
