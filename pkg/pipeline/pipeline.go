package pipeline

import "github.com/MMaikov/CarsDataset/pkg/model"

// Pipeline chains preprocessing transformers so a feature matrix can be
// fitted once and transformed consistently before a model fit.
type Pipeline struct {
	steps []model.Transformer
}

func New(steps ...model.Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits each step on the output of the previous one.
func (p *Pipeline) Fit(X [][]float64) error {
	for _, step := range p.steps {
		if err := step.Fit(X); err != nil {
			return err
		}
		X = step.Transform(X)
	}
	return nil
}

// Transform applies every fitted step in order.
func (p *Pipeline) Transform(X [][]float64) [][]float64 {
	for _, step := range p.steps {
		X = step.Transform(X)
	}
	return X
}

// FitTransform fits the chain and returns the transformed matrix.
func (p *Pipeline) FitTransform(X [][]float64) ([][]float64, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X), nil
}
