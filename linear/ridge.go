package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/selago-ml/selago/core/model"
	"github.com/selago-ml/selago/pkg/errors"
)

// Ridge is a linear regression model with L2 regularization, solved in
// closed form as w = (XᵀX + αI)⁻¹ Xᵀy. The intercept is not penalized.
type Ridge struct {
	model.BaseEstimator

	Weights   *mat.VecDense
	Intercept float64
	NFeatures int

	alpha        float64
	fitIntercept bool
}

// NewRidge creates a ridge regression model with the given
// regularization strength alpha. alpha = 0 is equivalent to ordinary
// least squares.
func NewRidge(alpha float64, opts ...RidgeOption) *Ridge {
	rr := &Ridge{alpha: alpha, fitIntercept: true}
	for _, opt := range opts {
		opt(rr)
	}
	return rr
}

// Alpha returns the regularization strength.
func (rr *Ridge) Alpha() float64 {
	return rr.alpha
}

// Fit trains the model.
func (rr *Ridge) Fit(X, y mat.Matrix) error {
	if rr.alpha < 0 {
		return errors.NewValueError("Ridge.Fit", "alpha must be non-negative")
	}

	weights, intercept, nFeatures, err := solveNormalEquations("Ridge.Fit", X, y, rr.alpha, rr.fitIntercept)
	if err != nil {
		return err
	}

	rr.Weights = weights
	rr.Intercept = intercept
	rr.NFeatures = nFeatures
	rr.SetFitted()
	return nil
}

// Predict returns predictions for X as an n×1 matrix.
func (rr *Ridge) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !rr.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "Predict")
	}
	return predictLinear("Ridge.Predict", X, rr.Weights, rr.Intercept, rr.NFeatures)
}

// Score computes the coefficient of determination R² on X, y.
func (rr *Ridge) Score(X, y mat.Matrix) (float64, error) {
	if !rr.IsFitted() {
		return 0, errors.NewNotFittedError("Ridge", "Score")
	}
	return scoreR2(rr, X, y)
}

// Clone returns a fresh unfitted model with the same hyperparameters.
func (rr *Ridge) Clone() model.Regressor {
	return &Ridge{alpha: rr.alpha, fitIntercept: rr.fitIntercept}
}
