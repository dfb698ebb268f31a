package analyze

import (
	"fmt"
	"math"

	"github.com/MMaikov/CarsDataset/pkg/dataset"
	"github.com/MMaikov/CarsDataset/pkg/stats"
)

// minForSpread is how many records a group needs before variance and
// standard deviation mean anything.
const minForSpread = 2

// InsufficientDataError records that one aggregation could not be
// computed for one group. It is reported in the Report, never fatal:
// the remaining aggregations still run.
type InsufficientDataError struct {
	Group  string
	Metric string
	Count  int
	Needed int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: group %q has %d records, %s needs at least %d",
		e.Group, e.Count, e.Metric, e.Needed)
}

// ColumnSummary holds descriptive statistics of one numeric column
// within one group. Std is NaN when the group is too small for it.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Median float64
}

// GroupSummary aggregates every requested numeric column for one group.
type GroupSummary struct {
	Key     string
	Count   int
	Columns []ColumnSummary
}

// Report is the Analyzer's primary output: per-group summaries plus the
// aggregations that could not be computed.
type Report struct {
	GroupColumn  string
	Numeric      []string
	Groups       []GroupSummary
	Insufficient []*InsufficientDataError
}

// Summarize groups a cleaned Dataset by one categorical column and
// describes every numeric column per group.
func Summarize(ds *dataset.Dataset, groupColumn string, numericColumns []string) (*Report, error) {
	groups, err := GroupBy(ds, groupColumn)
	if err != nil {
		return nil, err
	}
	report := &Report{GroupColumn: groupColumn, Numeric: numericColumns}
	for _, g := range groups {
		summary, skipped, err := Describe(g, numericColumns)
		if err != nil {
			return nil, err
		}
		report.Groups = append(report.Groups, summary)
		report.Insufficient = append(report.Insufficient, skipped...)
	}
	return report, nil
}

// Describe computes descriptive statistics for one group. Metrics that
// need more records than the group has are reported as
// InsufficientDataError findings; everything else is still computed.
func Describe(g Group, numericColumns []string) (GroupSummary, []*InsufficientDataError, error) {
	summary := GroupSummary{Key: g.Key, Count: g.Data.Len()}
	var skipped []*InsufficientDataError
	for _, name := range numericColumns {
		vals, err := g.Data.NumericColumn(name)
		if err != nil {
			return GroupSummary{}, nil, err
		}
		cs := ColumnSummary{
			Column: name,
			Count:  len(vals),
			Mean:   stats.Mean(vals),
			Median: stats.Median(vals),
		}
		cs.Min, cs.Max = stats.MinMax(vals)
		if len(vals) < minForSpread {
			cs.Std = math.NaN()
			skipped = append(skipped, &InsufficientDataError{
				Group:  g.Key,
				Metric: "std(" + name + ")",
				Count:  len(vals),
				Needed: minForSpread,
			})
		} else {
			cs.Std = stats.Std(vals)
		}
		summary.Columns = append(summary.Columns, cs)
	}
	return summary, skipped, nil
}
