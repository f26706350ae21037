package modelselection

import (
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/selago-ml/selago/core/model"
	"github.com/selago-ml/selago/metrics"
	"github.com/selago-ml/selago/pkg/errors"
)

// CrossValScore fits the estimator on each fold's training rows and
// returns the per-fold mean squared error on the held-out rows. When
// the estimator implements model.Cloner, folds run concurrently and
// each fold trains its own clone, so fitted state never crosses folds;
// otherwise folds run sequentially on the shared estimator.
func CrossValScore(est model.Regressor, X, y mat.Matrix, splitter Splitter) ([]float64, error) {
	folds := splitter.Split(X, y)
	nFolds := len(folds)
	if nFolds == 0 {
		return nil, errors.NewValueError("CrossValScore", "splitter produced no folds")
	}

	nSamples, _ := X.Dims()
	for idx, fold := range folds {
		if len(fold.TrainIndices) == 0 || len(fold.TestIndices) == 0 {
			return nil, errors.NewConfigurationError("CrossValScore",
				"splitter produced an empty fold; too few rows for the fold count",
				map[string]int{"fold": idx, "rows": nSamples, "folds": nFolds})
		}
	}

	scores := make([]float64, nFolds)

	cloner, canClone := est.(model.Cloner)
	if !canClone {
		for idx := range folds {
			mse, err := scoreFold(est, X, y, folds[idx], idx)
			if err != nil {
				return nil, err
			}
			scores[idx] = mse
		}
		return scores, nil
	}

	foldErrs := make([]error, nFolds)
	var wg sync.WaitGroup
	for foldIdx := 0; foldIdx < nFolds; foldIdx++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			scores[idx], foldErrs[idx] = scoreFold(cloner.Clone(), X, y, folds[idx], idx)
		}(foldIdx)
	}
	wg.Wait()

	for _, err := range foldErrs {
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}

// scoreFold fits m on the fold's training rows and returns the MSE on
// its held-out rows.
func scoreFold(m model.Regressor, X, y mat.Matrix, fold Fold, idx int) (float64, error) {
	trainX, trainY := extractRows(X, y, fold.TrainIndices)
	testX, testY := extractRows(X, y, fold.TestIndices)

	// Fitting a degenerate subset can panic inside matrix routines;
	// keep it contained to this fold.
	if err := errors.SafeExecute("CrossValScore fit", func() error {
		return m.Fit(trainX, trainY)
	}); err != nil {
		return 0, errors.Wrapf(err, "fold %d training failed", idx)
	}

	pred, err := m.Predict(testX)
	if err != nil {
		return 0, errors.Wrapf(err, "fold %d prediction failed", idx)
	}

	mse, err := metrics.MSEMatrix(testY, pred)
	if err != nil {
		return 0, errors.Wrapf(err, "fold %d scoring failed", idx)
	}
	return mse, nil
}

// MeanCVError averages per-fold scores into the scalar error estimate
// used as a subset score.
func MeanCVError(scores []float64) float64 {
	if len(scores) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// StdCVError returns the sample standard deviation of fold scores.
func StdCVError(scores []float64) float64 {
	if len(scores) <= 1 {
		return 0.0
	}
	mean := MeanCVError(scores)
	sumSq := 0.0
	for _, s := range scores {
		diff := s - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(scores)-1))
}

// BaselineScore is the mean squared error of predicting mean(y) for
// every row: the no-predictor model that seeds subset-growing search.
func BaselineScore(y mat.Matrix) (float64, error) {
	r, c := y.Dims()
	if r == 0 {
		return 0, errors.NewModelError("BaselineScore", "empty data", errors.ErrEmptyData)
	}
	if c != 1 {
		return 0, errors.NewValueError("BaselineScore", "y must be a column vector")
	}

	var mean float64
	for i := 0; i < r; i++ {
		mean += y.At(i, 0)
	}
	mean /= float64(r)

	var sum float64
	for i := 0; i < r; i++ {
		diff := y.At(i, 0) - mean
		sum += diff * diff
	}
	return sum / float64(r), nil
}

// extractRows copies the given rows of X and y into new matrices.
func extractRows(X, y mat.Matrix, indices []int) (mat.Matrix, mat.Matrix) {
	rows := len(indices)
	_, xCols := X.Dims()
	_, yCols := y.Dims()

	sortedIndices := make([]int, len(indices))
	copy(sortedIndices, indices)
	sort.Ints(sortedIndices)

	xSubset := mat.NewDense(rows, xCols, nil)
	ySubset := mat.NewDense(rows, yCols, nil)

	for i, idx := range sortedIndices {
		for j := 0; j < xCols; j++ {
			xSubset.Set(i, j, X.At(idx, j))
		}
		for j := 0; j < yCols; j++ {
			ySubset.Set(i, j, y.At(idx, j))
		}
	}
	return xSubset, ySubset
}
