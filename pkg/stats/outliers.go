package stats

import (
	"math"
	"sort"
)

// ClipColumn clips values to the given lower and upper percentiles.
// Bounds use the nearest-rank percentile, not interpolation: a clipped
// value lands exactly on an existing data point, so clipping an already
// clipped column is a no-op.
func ClipColumn(x []float64, lower, upper float64) []float64 {
	lo := rankPercentile(x, lower)
	hi := rankPercentile(x, upper)
	out := make([]float64, len(x))
	for i, v := range x {
		switch {
		case v < lo:
			out[i] = lo
		case v > hi:
			out[i] = hi
		default:
			out[i] = v
		}
	}
	return out
}

// ClipOutliers clips every column of a matrix to the given percentiles.
func ClipOutliers(X [][]float64, lower, upper float64) [][]float64 {
	if len(X) == 0 {
		return X
	}
	rows, cols := len(X), len(X[0])
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = X[i][j]
		}
		clipped := ClipColumn(col, lower, upper)
		for i := 0; i < rows; i++ {
			out[i][j] = clipped[i]
		}
	}
	return out
}

// rankPercentile returns the nearest-rank p-th percentile.
func rankPercentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	if p <= 0 {
		return cp[0]
	}
	if p >= 100 {
		return cp[n-1]
	}
	idx := int(math.Ceil(p/100*float64(n))) - 1
	if idx < 0 {
		idx = 0
	}
	return cp[idx]
}
