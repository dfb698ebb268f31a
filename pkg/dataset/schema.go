package dataset

import (
	"fmt"
	"strings"
)

// Schema names the columns a car-spec dataset must carry and which of
// them hold numbers. Extra columns in the input are allowed and kept.
type Schema struct {
	Required []string // rows missing one of these are dropped by cleaning
	Numeric  []string // coerced to canonical numbers by cleaning
}

// CarSchema is the column set the scrapers emit: identifying fields plus
// the technical specification fields the analysis uses.
func CarSchema() Schema {
	return Schema{
		Required: []string{"make", "model", "year"},
		Numeric:  []string{"year", "horsepower", "displacement", "weight", "acceleration"},
	}
}

// IsNumeric reports whether a column is declared numeric.
func (s Schema) IsNumeric(column string) bool {
	for _, c := range s.Numeric {
		if c == column {
			return true
		}
	}
	return false
}

// IsRequired reports whether a column is declared required.
func (s Schema) IsRequired(column string) bool {
	for _, c := range s.Required {
		if c == column {
			return true
		}
	}
	return false
}

// Validate checks that a header carries every required and numeric
// column. It returns a *ParseError naming the missing columns.
func (s Schema) Validate(columns []string) error {
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c] = true
	}
	var missing []string
	for _, c := range s.Required {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	for _, c := range s.Numeric {
		if !have[c] && !s.IsRequired(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &ParseError{Reason: fmt.Sprintf("header is missing columns: %s", strings.Join(missing, ", "))}
	}
	return nil
}

// ParseError reports input that does not match the expected tabular
// shape. It halts the run: there is no sensible best-effort recovery
// from a wrong column set.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "parse error: " + e.Reason
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Reason)
}
