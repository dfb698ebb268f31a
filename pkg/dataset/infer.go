package dataset

// ColumnType classifies a column by what its values hold.
type ColumnType int

const (
	TypeCategorical ColumnType = iota
	TypeNumeric
)

func (t ColumnType) String() string {
	if t == TypeNumeric {
		return "numeric"
	}
	return "categorical"
}

// InferColumnTypes classifies each column by inspecting a sample of
// rows. A column is numeric when every present sampled value parses as
// a number; missing markers do not count against it. A column with no
// present value in the sample stays categorical. sample <= 0 inspects
// every row.
func InferColumnTypes(ds *Dataset, sample int) map[string]ColumnType {
	if sample <= 0 || sample > ds.Len() {
		sample = ds.Len()
	}
	types := make(map[string]ColumnType, len(ds.Columns))
	for j, name := range ds.Columns {
		types[name] = TypeCategorical
		present := 0
		numeric := true
		for i := 0; i < sample; i++ {
			v := ds.Rows[i][j]
			if IsMissing(v) {
				continue
			}
			if _, err := ParseNumber(v); err != nil {
				numeric = false
				break
			}
			present++
		}
		if numeric && present > 0 {
			types[name] = TypeNumeric
		}
	}
	return types
}

// InferNumericColumns returns the numeric columns detected by
// InferColumnTypes, in header order.
func InferNumericColumns(ds *Dataset, sample int) []string {
	types := InferColumnTypes(ds, sample)
	var numeric []string
	for _, name := range ds.Columns {
		if types[name] == TypeNumeric {
			numeric = append(numeric, name)
		}
	}
	return numeric
}
