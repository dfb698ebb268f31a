package report

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"github.com/MMaikov/CarsDataset/pkg/analyze"
)

// WriteSummaryCSV serializes a Report as one row per group with
// mean/std/min/max/median columns per numeric field. A std the group was
// too small for is written as NA.
func WriteSummaryCSV(r *analyze.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{r.GroupColumn, "count"}
	for _, col := range r.Numeric {
		header = append(header,
			col+"_mean", col+"_std", col+"_min", col+"_max", col+"_median")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, g := range r.Groups {
		row := []string{g.Key, strconv.Itoa(g.Count)}
		for _, cs := range g.Columns {
			row = append(row,
				formatStat(cs.Mean),
				formatStat(cs.Std),
				formatStat(cs.Min),
				formatStat(cs.Max),
				formatStat(cs.Median))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteCorrelationCSV serializes a correlation matrix with row and
// column labels.
func WriteCorrelationCSV(columns []string, m [][]float64, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := append([]string{""}, columns...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, col := range columns {
		row := make([]string, 0, len(columns)+1)
		row = append(row, col)
		for j := range columns {
			row = append(row, formatStat(m[i][j]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
