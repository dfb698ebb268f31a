package loader

import "math/rand"

// TrainTestSplit splits X, y into train and test sets by ratio.
func TrainTestSplit(X [][]float64, y []float64, testRatio float64) (XTrain, XTest [][]float64, yTrain, yTest []float64) {
	n := len(X)
	indices := rand.Perm(n)
	nTest := int(float64(n) * testRatio)
	for i, idx := range indices {
		if i < nTest {
			XTest = append(XTest, X[idx])
			yTest = append(yTest, y[idx])
		} else {
			XTrain = append(XTrain, X[idx])
			yTrain = append(yTrain, y[idx])
		}
	}
	return
}

// Shuffle shuffles X and y in unison.
func Shuffle(X [][]float64, y []float64) ([][]float64, []float64) {
	n := len(X)
	indices := rand.Perm(n)
	XShuf := make([][]float64, n)
	yShuf := make([]float64, n)
	for i, idx := range indices {
		XShuf[i] = X[idx]
		yShuf[i] = y[idx]
	}
	return XShuf, yShuf
}

// KFold yields k folds of row indices for cross-validation. k is
// clamped to n so every fold holds at least one index; non-positive
// arguments yield nil.
func KFold(n, k int) [][]int {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	indices := rand.Perm(n)
	folds := make([][]int, k)
	for i, idx := range indices {
		folds[i%k] = append(folds[i%k], idx)
	}
	return folds
}
