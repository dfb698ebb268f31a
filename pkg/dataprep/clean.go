package dataprep

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/MMaikov/CarsDataset/pkg/dataset"
	"github.com/MMaikov/CarsDataset/pkg/stats"
)

// inferSample caps how many rows column type inference inspects.
const inferSample = 200

// Cleaner turns a raw scraped Dataset into one satisfying the cleaned
// invariant: no missing value in any required field, every numeric
// column holding canonically formatted numbers, no exact-duplicate rows.
// Cleaning is a single deterministic pass and is idempotent.
type Cleaner struct {
	Schema dataset.Schema
	Policy Policy

	log *zap.Logger
}

// NewCleaner builds a Cleaner. A nil logger disables logging.
func NewCleaner(schema dataset.Schema, policy Policy, log *zap.Logger) *Cleaner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cleaner{Schema: schema, Policy: policy, log: log}
}

// Clean produces a new cleaned Dataset. It returns an error when the
// policy is invalid and a *dataset.ParseError when the header does not
// carry the expected column set; malformed values inside rows are
// handled best-effort and never fail the run.
func (c *Cleaner) Clean(raw *dataset.Dataset) (*dataset.Dataset, error) {
	if err := c.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("dataprep: invalid policy: %w", err)
	}
	if err := c.Schema.Validate(raw.Columns); err != nil {
		return nil, err
	}
	schema := c.extendSchema(raw)

	cols := append([]string(nil), raw.Columns...)
	rows := make([][]string, len(raw.Rows))
	for i, r := range raw.Rows {
		rows[i] = append([]string(nil), r...)
	}

	c.coerceNumeric(schema, cols, rows)
	rows = c.dropMissingRequired(schema, cols, rows)
	cols, rows = c.dropSparseColumns(schema, cols, rows)
	rows = c.impute(schema, cols, rows)
	rows = dedupe(rows)
	if c.Policy.clipEnabled() {
		rows = c.clipToFixpoint(schema, cols, rows)
	}

	c.log.Info("cleaned dataset",
		zap.Int("rows_in", len(raw.Rows)),
		zap.Int("rows_out", len(rows)),
		zap.Int("columns", len(cols)))
	return &dataset.Dataset{Columns: cols, Rows: rows}, nil
}

// extendSchema widens the declared numeric set with columns outside the
// schema whose sampled values all parse as numbers, so extra scraped
// columns are cleaned like the declared ones.
func (c *Cleaner) extendSchema(raw *dataset.Dataset) dataset.Schema {
	schema := dataset.Schema{
		Required: c.Schema.Required,
		Numeric:  append([]string(nil), c.Schema.Numeric...),
	}
	for _, col := range dataset.InferNumericColumns(raw, inferSample) {
		if schema.IsNumeric(col) || schema.IsRequired(col) {
			continue
		}
		schema.Numeric = append(schema.Numeric, col)
		c.log.Info("detected numeric column outside the declared schema",
			zap.String("column", col))
	}
	return schema
}

// coerceNumeric rewrites numeric fields in canonical form. Missing
// markers and unparseable values both become the empty string.
func (c *Cleaner) coerceNumeric(schema dataset.Schema, cols []string, rows [][]string) {
	for j, name := range cols {
		if !schema.IsNumeric(name) {
			continue
		}
		bad := 0
		for _, row := range rows {
			if dataset.IsMissing(row[j]) {
				row[j] = ""
				continue
			}
			v, err := dataset.ParseNumber(row[j])
			if err != nil {
				row[j] = ""
				bad++
				continue
			}
			row[j] = dataset.FormatNumber(v)
		}
		if bad > 0 {
			c.log.Info("unparseable numeric values treated as missing",
				zap.String("column", name), zap.Int("values", bad))
		}
	}
}

// dropMissingRequired removes rows missing any required field. A row
// without its identifying fields cannot be grouped or deduplicated
// meaningfully.
func (c *Cleaner) dropMissingRequired(schema dataset.Schema, cols []string, rows [][]string) [][]string {
	var reqIdx []int
	for j, name := range cols {
		if schema.IsRequired(name) {
			reqIdx = append(reqIdx, j)
		}
	}
	kept := rows[:0]
	dropped := 0
	for _, row := range rows {
		ok := true
		for _, j := range reqIdx {
			if dataset.IsMissing(row[j]) {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, row)
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		c.log.Info("dropped rows missing a required field", zap.Int("rows", dropped))
	}
	return kept
}

// dropSparseColumns removes optional columns whose missing ratio exceeds
// the policy threshold.
func (c *Cleaner) dropSparseColumns(schema dataset.Schema, cols []string, rows [][]string) ([]string, [][]string) {
	if len(rows) == 0 || c.Policy.MaxMissingRatio >= 1 {
		return cols, rows
	}
	keep := make([]bool, len(cols))
	n := float64(len(rows))
	anyDropped := false
	for j, name := range cols {
		missing := 0
		for _, row := range rows {
			if dataset.IsMissing(row[j]) {
				missing++
			}
		}
		ratio := float64(missing) / n
		keep[j] = schema.IsRequired(name) || ratio <= c.Policy.MaxMissingRatio
		if !keep[j] {
			anyDropped = true
			c.log.Info("dropped sparse column",
				zap.String("column", name), zap.Float64("missing_ratio", ratio))
		}
	}
	if !anyDropped {
		return cols, rows
	}
	var newCols []string
	for j, name := range cols {
		if keep[j] {
			newCols = append(newCols, name)
		}
	}
	newRows := make([][]string, len(rows))
	for i, row := range rows {
		nr := make([]string, 0, len(newCols))
		for j, v := range row {
			if keep[j] {
				nr = append(nr, v)
			}
		}
		newRows[i] = nr
	}
	return newCols, newRows
}

// impute fills the remaining missing values column by column, following
// the policy for numeric and categorical fields.
func (c *Cleaner) impute(schema dataset.Schema, cols []string, rows [][]string) [][]string {
	for j, name := range cols {
		col := columnOf(rows, j)
		missing := countMissing(col)
		if missing == 0 {
			continue
		}

		var strategy string
		if schema.IsNumeric(name) {
			strategy = c.Policy.NumericStrategy
		} else {
			strategy = c.Policy.CategoricalStrategy
		}

		if strategy == StrategyDrop {
			before := len(rows)
			rows = dropMissingIn(rows, j)
			c.log.Info("dropped rows with missing value",
				zap.String("column", name), zap.Int("rows", before-len(rows)))
			continue
		}

		var filled []string
		if schema.IsNumeric(name) {
			switch strategy {
			case StrategyMean:
				filled = ImputeMean(col)
			case StrategyMedian:
				filled = ImputeMedian(col)
			case StrategyMode:
				filled = ImputeMode(col)
			case StrategyConstant:
				filled = ImputeConstant(col, dataset.FormatNumber(c.Policy.NumericConstant))
			}
		} else {
			switch strategy {
			case StrategyMode:
				filled = ImputeMode(col)
			case StrategyConstant:
				filled = ImputeConstant(col, c.Policy.CategoricalConstant)
			}
		}
		setColumn(rows, j, filled)
		c.log.Info("imputed missing values",
			zap.String("column", name),
			zap.String("strategy", strategy),
			zap.Int("values", missing))
	}
	return rows
}

// clipToFixpoint interleaves clipping and deduplication until both are
// stable. Clipping can merge rows that differed only in a clipped
// value; the percentile bounds must then be recomputed on the merged
// set, or the next cleaning pass would move values again.
func (c *Cleaner) clipToFixpoint(schema dataset.Schema, cols []string, rows [][]string) [][]string {
	for {
		changed := c.clip(schema, cols, rows)
		before := len(rows)
		rows = dedupe(rows)
		if !changed && len(rows) == before {
			return rows
		}
	}
}

// clip bounds each numeric column to the policy percentile band and
// reports whether any value moved. Runs after imputation, so every
// numeric value parses.
func (c *Cleaner) clip(schema dataset.Schema, cols []string, rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	anyChanged := false
	for j, name := range cols {
		if !schema.IsNumeric(name) {
			continue
		}
		vals := make([]float64, len(rows))
		for i, row := range rows {
			v, err := dataset.ParseNumber(row[j])
			if err != nil {
				return anyChanged // should not happen on imputed data
			}
			vals[i] = v
		}
		clipped := stats.ClipColumn(vals, c.Policy.ClipLower, c.Policy.ClipUpper)
		changed := 0
		for i, row := range rows {
			if clipped[i] != vals[i] {
				changed++
			}
			row[j] = dataset.FormatNumber(clipped[i])
		}
		if changed > 0 {
			anyChanged = true
			c.log.Info("clipped outliers",
				zap.String("column", name), zap.Int("values", changed))
		}
	}
	return anyChanged
}

// dedupe removes exact-duplicate rows, keeping the first occurrence.
func dedupe(rows [][]string) [][]string {
	seen := make(map[string]struct{}, len(rows))
	kept := rows[:0]
	for _, row := range rows {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	return kept
}

func columnOf(rows [][]string, j int) []string {
	col := make([]string, len(rows))
	for i, row := range rows {
		col[i] = row[j]
	}
	return col
}

func setColumn(rows [][]string, j int, col []string) {
	for i := range rows {
		rows[i][j] = col[i]
	}
}

func countMissing(col []string) int {
	n := 0
	for _, v := range col {
		if dataset.IsMissing(v) {
			n++
		}
	}
	return n
}

func dropMissingIn(rows [][]string, j int) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		if !dataset.IsMissing(row[j]) {
			kept = append(kept, row)
		}
	}
	return kept
}
