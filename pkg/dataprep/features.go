package dataprep

import "math"

// PolynomialFeatures expands a feature matrix with degree-2 products and
// names the new columns after their factors ("weight^2",
// "weight*horsepower"). Degrees above 2 are treated as 2; degree 1
// returns a copy.
func PolynomialFeatures(X [][]float64, headers []string, degree int) ([][]float64, []string) {
	if len(X) == 0 {
		return X, headers
	}
	nFeatures := len(X[0])
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = append([]float64(nil), row...)
	}
	names := append([]string(nil), headers...)
	if degree < 2 {
		return out, names
	}
	for j := 0; j < nFeatures; j++ {
		for k := j; k < nFeatures; k++ {
			for i := range out {
				out[i] = append(out[i], X[i][j]*X[i][k])
			}
			if j == k {
				names = append(names, headers[j]+"^2")
			} else {
				names = append(names, headers[j]+"*"+headers[k])
			}
		}
	}
	return out, names
}

// LogTransform applies log(x+1) to each value, compressing the long
// right tails of spec fields like displacement.
func LogTransform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Log1p(v)
	}
	return out
}
