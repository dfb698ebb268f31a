package model

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// KMeans partitions car variants into K clusters in spec-feature space.
type KMeans struct {
	K         int
	MaxIter   int
	Centroids [][]float64
	Inertia   float64 // sum of squared distances to the nearest centroid
}

// NewKMeans returns an unfitted model.
func NewKMeans(k, maxIter int) *KMeans {
	return &KMeans{K: k, MaxIter: maxIter}
}

// Fit runs Lloyd iterations with kmeans++ initialization. The
// assignment step is parallelized across CPU cores.
func (m *KMeans) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("input data cannot be empty")
	}
	n, p := len(X), len(X[0])
	if n < m.K {
		return errors.New("number of data points is less than K")
	}

	m.initCentroids(X)

	assign := make([]int, n)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)

	for it := 0; it < m.MaxIter; it++ {
		var changed atomic.Bool
		m.Inertia = 0

		// Assignment step, chunked across workers.
		rowsPerWorker := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * rowsPerWorker
			end := start + rowsPerWorker
			if end > n {
				end = n
			}
			if start >= end {
				continue
			}
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					best := m.nearest(X[i])
					if assign[i] != best {
						changed.Store(true)
					}
					assign[i] = best
				}
			}(start, end)
		}
		wg.Wait()

		// Update step: centroids move to the mean of their members.
		sums := make([][]float64, m.K)
		counts := make([]int, m.K)
		for k := 0; k < m.K; k++ {
			sums[k] = make([]float64, p)
		}
		for i := 0; i < n; i++ {
			k := assign[i]
			counts[k]++
			for j := 0; j < p; j++ {
				sums[k][j] += X[i][j]
			}
			m.Inertia += euclidSquared(X[i], m.Centroids[k])
		}
		for k := 0; k < m.K; k++ {
			if counts[k] == 0 {
				continue // empty cluster keeps its centroid
			}
			for j := 0; j < p; j++ {
				m.Centroids[k][j] = sums[k][j] / float64(counts[k])
			}
		}

		if !changed.Load() {
			break
		}
	}
	return nil
}

// Predict assigns each row to its nearest centroid.
func (m *KMeans) Predict(X [][]float64) ([]int, error) {
	if len(X) == 0 {
		return nil, errors.New("input data for prediction cannot be empty")
	}
	if len(m.Centroids) == 0 {
		return nil, errors.New("model is not fitted")
	}
	if len(X[0]) != len(m.Centroids[0]) {
		return nil, errors.New("feature count mismatch between input data and model centroids")
	}

	n := len(X)
	assignments := make([]int, n)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				assignments[i] = m.nearest(X[i])
			}
		}(start, end)
	}
	wg.Wait()
	return assignments, nil
}

func (m *KMeans) nearest(x []float64) int {
	best, bestDist := 0, math.MaxFloat64
	for k := range m.Centroids {
		d := euclidSquared(x, m.Centroids[k])
		if d < bestDist {
			bestDist = d
			best = k
		}
	}
	return best
}

// initCentroids seeds centroids with kmeans++: the first is random, the
// rest are drawn proportionally to squared distance from the chosen set.
func (m *KMeans) initCentroids(X [][]float64) {
	n := len(X)
	m.Centroids = make([][]float64, m.K)
	m.Centroids[0] = append([]float64(nil), X[rand.Intn(n)]...)

	distSq := make([]float64, n)
	for k := 1; k < m.K; k++ {
		total := 0.0
		for i, x := range X {
			minDist := math.MaxFloat64
			for _, c := range m.Centroids[:k] {
				if d := euclidSquared(x, c); d < minDist {
					minDist = d
				}
			}
			distSq[i] = minDist
			total += minDist
		}
		r := rand.Float64() * total
		cumulative := 0.0
		chosen := n - 1
		for i, d := range distSq {
			cumulative += d
			if cumulative >= r {
				chosen = i
				break
			}
		}
		m.Centroids[k] = append([]float64(nil), X[chosen]...)
	}
}

func euclidSquared(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}
