package model

import "gonum.org/v1/gonum/mat"

// Fitter is a model that can be trained on data.
type Fitter interface {
	// Fit trains the model on X (n×p) and y (n×1).
	Fit(X, y mat.Matrix) error
}

// Predictor is a model that can predict targets for new data.
type Predictor interface {
	// Predict returns predictions for X as an n×1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Transformer converts a feature matrix into another feature matrix,
// e.g. standardization or one-hot encoding.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (mat.Matrix, error)
}

// Regressor is the contract cross-validation and subset search expect
// from a model: trainable and able to predict.
type Regressor interface {
	Fitter
	Predictor
}

// Cloner produces a fresh, unfitted copy of an estimator with the same
// hyperparameters. Cross-validation refits a clone per fold so fold
// state never leaks between evaluations.
type Cloner interface {
	Clone() Regressor
}
