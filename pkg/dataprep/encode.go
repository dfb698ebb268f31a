package dataprep

// Encoders for feeding categorical car fields (make, body type, fuel
// type) into numeric models. Category indices follow first appearance,
// so encoding is deterministic for a fixed input order.

// OneHotEncode expands a categorical column into indicator vectors.
// The mapping gives each category's vector index.
func OneHotEncode(col []string) ([][]float64, map[string]int) {
	mapping := map[string]int{}
	for _, v := range col {
		if _, ok := mapping[v]; !ok {
			mapping[v] = len(mapping)
		}
	}
	out := make([][]float64, len(col))
	for i, v := range col {
		vec := make([]float64, len(mapping))
		vec[mapping[v]] = 1
		out[i] = vec
	}
	return out, mapping
}

// LabelEncode maps categories to integer codes.
func LabelEncode(col []string) ([]int, map[string]int) {
	mapping := map[string]int{}
	out := make([]int, len(col))
	for i, v := range col {
		if _, ok := mapping[v]; !ok {
			mapping[v] = len(mapping)
		}
		out[i] = mapping[v]
	}
	return out, mapping
}

// FrequencyEncode maps each category to its relative frequency.
func FrequencyEncode(col []string) ([]float64, map[string]float64) {
	counts := map[string]float64{}
	for _, v := range col {
		counts[v]++
	}
	freqs := make(map[string]float64, len(counts))
	for k, c := range counts {
		freqs[k] = c / float64(len(col))
	}
	out := make([]float64, len(col))
	for i, v := range col {
		out[i] = freqs[v]
	}
	return out, freqs
}

// AppendOneHot widens a feature matrix with the one-hot encoding of a
// categorical column. X and col must have the same length.
func AppendOneHot(X [][]float64, col []string) [][]float64 {
	encoded, _ := OneHotEncode(col)
	out := make([][]float64, len(X))
	for i, row := range X {
		widened := make([]float64, 0, len(row)+len(encoded[i]))
		widened = append(widened, row...)
		widened = append(widened, encoded[i]...)
		out[i] = widened
	}
	return out
}
