package model

// EstimatorState represents the fitted state of an estimator.
type EstimatorState int

const (
	// NotFitted means Fit has not been called yet.
	NotFitted EstimatorState = iota
	// Fitted means the estimator has been trained.
	Fitted
)

// BaseEstimator is embedded by every estimator and transformer to
// track fitted state.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the estimator has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
