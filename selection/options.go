package selection

import "math"

type options struct {
	baseline     float64
	parallelEval bool
}

func applyOptions(opts []Option) options {
	// +Inf is the "no model yet" sentinel: any finite score beats it
	o := options{baseline: math.Inf(1)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a search run.
type Option func(*options)

// WithBaseline sets the initial incumbent score for exhaustive and
// forward search, conventionally the error of predicting the label
// mean for every row (see modelselection.BaselineScore). Without it
// the incumbent starts at +Inf. Backward search ignores this option:
// its incumbent is the full-universe model score.
func WithBaseline(score float64) Option {
	return func(o *options) {
		o.baseline = score
	}
}

// WithParallelEvaluation makes each round (or combination size, for
// exhaustive search) score its candidates concurrently. Scores are
// still folded into the tracker sequentially in candidate order, so
// the selected features and the reported best are identical to a
// serial run.
func WithParallelEvaluation() Option {
	return func(o *options) {
		o.parallelEval = true
	}
}
