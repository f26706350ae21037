// Package linear implements linear regression models trained by the
// normal equations. LinearRegression is ordinary least squares; Ridge
// adds an L2 penalty with a closed-form solution.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/selago-ml/selago/core/model"
	"github.com/selago-ml/selago/core/parallel"
	"github.com/selago-ml/selago/pkg/errors"
)

// LinearRegression is an ordinary least squares regression model.
type LinearRegression struct {
	model.BaseEstimator

	// Weights are the fitted coefficients, one per feature.
	Weights *mat.VecDense
	// Intercept is the fitted bias term.
	Intercept float64
	// NFeatures is the number of features seen during Fit.
	NFeatures int

	fitIntercept bool
}

// NewLinearRegression creates a linear regression model.
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{fitIntercept: true}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit trains the model by solving the normal equations
// w = (XᵀX)⁻¹ Xᵀy.
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	weights, intercept, nFeatures, err := solveNormalEquations("LinearRegression.Fit", X, y, 0, lr.fitIntercept)
	if err != nil {
		return err
	}

	lr.Weights = weights
	lr.Intercept = intercept
	lr.NFeatures = nFeatures
	lr.SetFitted()
	return nil
}

// Predict returns predictions for X as an n×1 matrix.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}
	return predictLinear("LinearRegression.Predict", X, lr.Weights, lr.Intercept, lr.NFeatures)
}

// GetWeights returns the fitted coefficients as a slice.
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}
	weights := make([]float64, lr.Weights.Len())
	for i := 0; i < lr.Weights.Len(); i++ {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept returns the fitted intercept.
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// Score computes the coefficient of determination R² on X, y.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}
	return scoreR2(lr, X, y)
}

// Clone returns a fresh unfitted model with the same hyperparameters.
func (lr *LinearRegression) Clone() model.Regressor {
	return &LinearRegression{fitIntercept: lr.fitIntercept}
}

// solveNormalEquations solves (XᵀX + αI)⁻¹ Xᵀy, optionally with an
// intercept column prepended to X. The intercept is never penalized.
func solveNormalEquations(op string, X, y mat.Matrix, alpha float64, fitIntercept bool) (*mat.VecDense, float64, int, error) {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return nil, 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return nil, 0, 0, errors.NewDimensionError(op, r, ry, 0)
	}
	if cy != 1 {
		return nil, 0, 0, errors.NewValueError(op, "y must be a column vector")
	}

	cols := c
	if fitIntercept {
		cols = c + 1
	}

	design := mat.NewDense(r, cols, nil)

	// Sequential below this many rows; the copy is memory bound
	const parallelThreshold = 1000

	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			offset := 0
			if fitIntercept {
				design.Set(i, 0, 1.0)
				offset = 1
			}
			for j := 0; j < c; j++ {
				design.Set(i, j+offset, X.At(i, j))
			}
		}
	})

	var dT mat.Dense
	dT.CloneFrom(design.T())

	var dTd mat.Dense
	dTd.Mul(&dT, design)

	if alpha > 0 {
		start := 0
		if fitIntercept {
			start = 1
		}
		for j := start; j < cols; j++ {
			dTd.Set(j, j, dTd.At(j, j)+alpha)
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(&dTd); err != nil {
		return nil, 0, 0, errors.NewModelError(op, "singular matrix", errors.ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var dTy mat.VecDense
	dTy.MulVec(&dT, yVec)

	solution := mat.NewVecDense(cols, nil)
	solution.MulVec(&inv, &dTy)

	intercept := 0.0
	weights := mat.NewVecDense(c, nil)
	if fitIntercept {
		intercept = solution.AtVec(0)
		for i := 0; i < c; i++ {
			weights.SetVec(i, solution.AtVec(i+1))
		}
	} else {
		for i := 0; i < c; i++ {
			weights.SetVec(i, solution.AtVec(i))
		}
	}
	return weights, intercept, c, nil
}

func predictLinear(op string, X mat.Matrix, weights *mat.VecDense, intercept float64, nFeatures int) (mat.Matrix, error) {
	r, c := X.Dims()
	if c != nFeatures {
		return nil, errors.NewDimensionError(op, nFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

func scoreR2(m model.Predictor, X, y mat.Matrix) (float64, error) {
	yPred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()

	var yMean float64
	for i := 0; i < r; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(r)

	var tss, rss float64
	for i := 0; i < r; i++ {
		yTrue := y.At(i, 0)
		yPredVal := yPred.At(i, 0)

		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yPredVal) * (yTrue - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}
