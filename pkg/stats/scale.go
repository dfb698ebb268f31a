package stats

import "math"

// StandardScaler standardizes each column to zero mean and unit variance.
// Fit on training data, then Transform any matrix with the same columns.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return nil
	}
	r, c := len(X), len(X[0])
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			s.Mean[j] += X[i][j]
		}
		s.Mean[j] /= float64(r)
		v := 0.0
		for i := 0; i < r; i++ {
			d := X[i][j] - s.Mean[j]
			v += d * d
		}
		s.Std[j] = math.Sqrt(v / float64(r))
		if s.Std[j] == 0 {
			s.Std[j] = 1 // constant column, leave values at zero after centering
		}
	}
	s.fit = true
	return nil
}

func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	if !s.fit {
		return X
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out
}

func (s *StandardScaler) FitTransform(X [][]float64) [][]float64 {
	_ = s.Fit(X)
	return s.Transform(X)
}

// MinMaxScale scales each column to [0, 1]. Constant columns map to 0.
func MinMaxScale(X [][]float64) [][]float64 {
	if len(X) == 0 {
		return X
	}
	rows, cols := len(X), len(X[0])
	mins := make([]float64, cols)
	maxs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i] = X[i][j]
		}
		mins[j], maxs[j] = MinMax(col)
	}
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if maxs[j] != mins[j] {
				out[i][j] = (X[i][j] - mins[j]) / (maxs[j] - mins[j])
			}
		}
	}
	return out
}

// RobustScale scales each column by median and interquartile range,
// which keeps single extreme spec values from dominating a column.
func RobustScale(X [][]float64) [][]float64 {
	if len(X) == 0 {
		return X
	}
	rows, cols := len(X), len(X[0])
	medians := make([]float64, cols)
	iqrs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i] = X[i][j]
		}
		medians[j] = Median(col)
		iqrs[j] = Percentile(col, 75) - Percentile(col, 25)
	}
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if iqrs[j] != 0 {
				out[i][j] = (X[i][j] - medians[j]) / iqrs[j]
			}
		}
	}
	return out
}
