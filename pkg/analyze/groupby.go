package analyze

import (
	"fmt"

	"github.com/MMaikov/CarsDataset/pkg/dataset"
)

// Group is one slice of a Dataset sharing a categorical value.
type Group struct {
	Key  string
	Data *dataset.Dataset
}

// GroupBy partitions a cleaned Dataset by a categorical column.
// Groups keep first-appearance order so output is stable across runs.
func GroupBy(ds *dataset.Dataset, column string) ([]Group, error) {
	j := ds.ColumnIndex(column)
	if j < 0 {
		return nil, fmt.Errorf("analyze: no column %q to group by", column)
	}
	byKey := make(map[string]*dataset.Dataset)
	var order []string
	for _, row := range ds.Rows {
		key := row[j]
		sub, ok := byKey[key]
		if !ok {
			sub = dataset.New(ds.Columns)
			byKey[key] = sub
			order = append(order, key)
		}
		sub.Rows = append(sub.Rows, row)
	}
	groups := make([]Group, len(order))
	for i, key := range order {
		groups[i] = Group{Key: key, Data: byKey[key]}
	}
	return groups, nil
}
