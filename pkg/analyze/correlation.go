package analyze

import (
	"github.com/MMaikov/CarsDataset/pkg/dataset"
	"github.com/MMaikov/CarsDataset/pkg/stats"
)

// CorrelationMatrix computes pairwise Pearson correlations between the
// named numeric columns. Fewer than two records cannot correlate and is
// reported as an InsufficientDataError.
func CorrelationMatrix(ds *dataset.Dataset, numericColumns []string) ([][]float64, error) {
	if ds.Len() < minForSpread {
		return nil, &InsufficientDataError{
			Group:  "all",
			Metric: "correlation",
			Count:  ds.Len(),
			Needed: minForSpread,
		}
	}
	cols := make([][]float64, len(numericColumns))
	for i, name := range numericColumns {
		vals, err := ds.NumericColumn(name)
		if err != nil {
			return nil, err
		}
		cols[i] = vals
	}
	m := make([][]float64, len(cols))
	for i := range cols {
		m[i] = make([]float64, len(cols))
		m[i][i] = 1
		for j := 0; j < i; j++ {
			r := stats.Correlation(cols[i], cols[j])
			m[i][j] = r
			m[j][i] = r
		}
	}
	return m, nil
}
