package linear

// Option configures a LinearRegression.
type Option func(*LinearRegression)

// WithFitIntercept sets whether the model fits a bias term.
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}

// RidgeOption configures a Ridge model.
type RidgeOption func(*Ridge)

// WithRidgeFitIntercept sets whether the ridge model fits a bias term.
func WithRidgeFitIntercept(fit bool) RidgeOption {
	return func(rr *Ridge) {
		rr.fitIntercept = fit
	}
}
