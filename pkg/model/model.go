package model

// Model is a supervised learner over numeric spec features.
type Model interface {
	Predict(X [][]float64) []float64
}

// Clusterer partitions rows of a feature matrix.
type Clusterer interface {
	Fit(X [][]float64) error
	Predict(X [][]float64) ([]int, error)
}

// Transformer is a preprocessing step: fit on training data, transform
// anything with the same columns.
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) [][]float64
}
