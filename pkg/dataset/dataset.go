package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Dataset is an ordered collection of rows sharing one header.
// Values are kept as strings until a consumer asks for numeric columns;
// cleaning guarantees numeric columns hold canonically formatted numbers.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty Dataset with the given header.
func New(columns []string) *Dataset {
	return &Dataset{Columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// ColumnIndex returns the position of a named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the values in a named column.
func (d *Dataset) Column(name string) ([]string, error) {
	j := d.ColumnIndex(name)
	if j < 0 {
		return nil, fmt.Errorf("dataset: no column %q", name)
	}
	col := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		col[i] = row[j]
	}
	return col, nil
}

// NumericColumn parses a named column as float64 values. Callers run on
// cleaned data, so any unparseable value is an error.
func (d *Dataset) NumericColumn(name string) ([]float64, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, s := range col {
		v, err := ParseNumber(s)
		if err != nil {
			return nil, fmt.Errorf("dataset: column %q row %d: %w", name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Matrix extracts the named columns as a row-major feature matrix.
func (d *Dataset) Matrix(columns []string) ([][]float64, error) {
	idx := make([]int, len(columns))
	for k, name := range columns {
		j := d.ColumnIndex(name)
		if j < 0 {
			return nil, fmt.Errorf("dataset: no column %q", name)
		}
		idx[k] = j
	}
	X := make([][]float64, len(d.Rows))
	for i, row := range d.Rows {
		x := make([]float64, len(idx))
		for k, j := range idx {
			v, err := ParseNumber(row[j])
			if err != nil {
				return nil, fmt.Errorf("dataset: column %q row %d: %w", columns[k], i, err)
			}
			x[k] = v
		}
		X[i] = x
	}
	return X, nil
}

// IsMissing reports whether a raw value is one of the missing-value
// markers seen in the scraped inputs.
func IsMissing(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "NA", "NaN", "N/A", "n/a", "null", "NULL", "-":
		return true
	}
	return false
}

// ParseNumber parses a numeric field, tolerating surrounding whitespace
// and thousands separators, so "1,200" and "1200.0" both yield 1200.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

// FormatNumber renders a float in the canonical form used in cleaned
// files: the shortest decimal string that parses back to the same value.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
