package pipeline

import (
	"github.com/selago-ml/selago/core/model"
	"github.com/selago-ml/selago/dataset"
	"github.com/selago-ml/selago/modelselection"
	"github.com/selago-ml/selago/pkg/errors"
)

// NewSubsetOracle builds the subset-scoring function consumed by
// selection searches. For a feature subset it selects those columns
// from the table, wraps the estimator in a ColumnPipeline that one-hot
// encodes the table's categorical columns and standardizes the rest,
// and returns the mean cross-validated MSE under the given splitter.
//
// The empty subset scores as the no-predictor baseline (MSE of
// predicting mean(y)), which is also the conventional starting
// incumbent for exhaustive and forward search.
//
// Determinism follows from the splitter: a seeded KFold or LeaveOneOut
// makes repeated calls with the same subset return the same score.
func NewSubsetOracle(t *dataset.Table, estimator model.Regressor, splitter modelselection.Splitter) (func(subset []string) (float64, error), error) {
	if t.TargetName() == "" {
		return nil, errors.NewConfigurationError("pipeline.NewSubsetOracle", "table has no target column", nil)
	}
	y, err := t.Target()
	if err != nil {
		return nil, err
	}

	universe := make(map[string]bool)
	for _, name := range t.FeatureNames() {
		universe[name] = true
	}

	return func(subset []string) (float64, error) {
		if len(subset) == 0 {
			return modelselection.BaselineScore(y)
		}

		for _, name := range subset {
			if !universe[name] {
				return 0, errors.NewConfigurationError("pipeline.SubsetOracle", "subset references unknown feature", name)
			}
		}

		X, err := t.Select(subset)
		if err != nil {
			return 0, err
		}

		categorical := make([]string, 0, len(subset))
		for _, name := range subset {
			if t.IsCategorical(name) {
				categorical = append(categorical, name)
			}
		}

		pipe := NewColumnPipeline(estimator, subset, categorical)
		scores, err := modelselection.CrossValScore(pipe, X, y, splitter)
		if err != nil {
			return 0, err
		}
		return modelselection.MeanCVError(scores), nil
	}, nil
}
