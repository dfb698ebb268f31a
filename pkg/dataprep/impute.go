package dataprep

import (
	"github.com/MMaikov/CarsDataset/pkg/dataset"
	"github.com/MMaikov/CarsDataset/pkg/stats"
)

// ImputeMean replaces missing numeric values with the column mean.
func ImputeMean(col []string) []string {
	return imputeNumeric(col, stats.Mean)
}

// ImputeMedian replaces missing numeric values with the column median.
func ImputeMedian(col []string) []string {
	return imputeNumeric(col, stats.Median)
}

// ImputeMode replaces missing values with the most frequent present
// value. Works for categorical and (canonically formatted) numeric
// columns alike.
func ImputeMode(col []string) []string {
	counts := make(map[string]int)
	mode, best := "", 0
	for _, v := range col {
		if dataset.IsMissing(v) {
			continue
		}
		counts[v]++
		if counts[v] > best {
			best = counts[v]
			mode = v
		}
	}
	if best == 0 {
		return col // nothing present to borrow from
	}
	out := make([]string, len(col))
	for i, v := range col {
		if dataset.IsMissing(v) {
			out[i] = mode
		} else {
			out[i] = v
		}
	}
	return out
}

// ImputeConstant replaces missing values with a fixed constant.
func ImputeConstant(col []string, constant string) []string {
	out := make([]string, len(col))
	for i, v := range col {
		if dataset.IsMissing(v) {
			out[i] = constant
		} else {
			out[i] = v
		}
	}
	return out
}

func imputeNumeric(col []string, reduce func([]float64) float64) []string {
	var present []float64
	for _, v := range col {
		if dataset.IsMissing(v) {
			continue
		}
		if num, err := dataset.ParseNumber(v); err == nil {
			present = append(present, num)
		}
	}
	if len(present) == 0 {
		return col
	}
	fill := dataset.FormatNumber(reduce(present))
	out := make([]string, len(col))
	for i, v := range col {
		if dataset.IsMissing(v) {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return out
}
