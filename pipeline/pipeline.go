// Package pipeline composes preprocessing transformers with a final
// regression estimator, and builds the subset-scoring oracle that
// connects a dataset, a model and a cross-validation splitter to
// subset search.
package pipeline

import (
	"gonum.org/v1/gonum/mat"

	"github.com/selago-ml/selago/core/model"
	"github.com/selago-ml/selago/pkg/errors"
)

// TransformerFactory produces a fresh, unfitted transformer. Pipelines
// store factories rather than instances so a cloned pipeline never
// shares fitted state with its source.
type TransformerFactory func() model.Transformer

// Pipeline applies a chain of transformers to the whole feature matrix
// and then fits a final estimator on the transformed output.
type Pipeline struct {
	model.BaseEstimator

	factories []TransformerFactory
	estimator model.Regressor

	transformers []model.Transformer
	fitted       model.Regressor
}

// NewPipeline creates a pipeline ending in the given estimator.
func NewPipeline(estimator model.Regressor, factories ...TransformerFactory) *Pipeline {
	return &Pipeline{
		factories: factories,
		estimator: estimator,
	}
}

// Fit fits each transformer in order on the running output, then fits
// the estimator on the fully transformed matrix.
func (p *Pipeline) Fit(X, y mat.Matrix) error {
	transformed := X
	p.transformers = make([]model.Transformer, 0, len(p.factories))

	for i, factory := range p.factories {
		tr := factory()
		if err := tr.Fit(transformed); err != nil {
			return errors.Wrapf(err, "pipeline step %d fit", i)
		}
		out, err := tr.Transform(transformed)
		if err != nil {
			return errors.Wrapf(err, "pipeline step %d transform", i)
		}
		p.transformers = append(p.transformers, tr)
		transformed = out
	}

	p.fitted = cloneEstimator(p.estimator)
	if err := p.fitted.Fit(transformed, y); err != nil {
		return errors.Wrap(err, "pipeline estimator fit")
	}

	p.SetFitted()
	return nil
}

// Predict runs X through the fitted transformers and the estimator.
func (p *Pipeline) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("Pipeline", "Predict")
	}

	transformed := X
	for i, tr := range p.transformers {
		out, err := tr.Transform(transformed)
		if err != nil {
			return nil, errors.Wrapf(err, "pipeline step %d transform", i)
		}
		transformed = out
	}
	return p.fitted.Predict(transformed)
}

// Clone returns an unfitted copy with the same steps and estimator
// hyperparameters.
func (p *Pipeline) Clone() model.Regressor {
	return NewPipeline(cloneEstimator(p.estimator), p.factories...)
}

func cloneEstimator(est model.Regressor) model.Regressor {
	if cloner, ok := est.(model.Cloner); ok {
		return cloner.Clone()
	}
	return est
}
