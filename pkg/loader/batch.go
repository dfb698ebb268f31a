package loader

// Batch is one mini-batch of feature rows and targets for training.
type Batch struct {
	X [][]float64
	Y []float64
}

// Batches slices a feature matrix into mini-batches and sends them on a
// channel, closing it when done. Training consumes the channel; the
// whole dataset fits in memory, so no early-stop plumbing is needed.
func Batches(X [][]float64, y []float64, batchSize int) <-chan Batch {
	if batchSize <= 0 {
		batchSize = len(X)
	}
	out := make(chan Batch)
	go func() {
		defer close(out)
		for i := 0; i < len(X); i += batchSize {
			end := i + batchSize
			if end > len(X) {
				end = len(X)
			}
			out <- Batch{X: X[i:end], Y: y[i:end]}
		}
	}()
	return out
}
