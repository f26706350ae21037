package selection

import (
	"math"

	"github.com/selago-ml/selago/core/parallel"
	"github.com/selago-ml/selago/pkg/errors"
)

// Oracle scores a feature subset, returning the estimated
// out-of-sample error of a model trained on exactly those features.
// The call may be expensive (it typically refits a model per fold) and
// must be deterministic for a fixed configuration; any randomness in
// the underlying partitioning is seeded by the oracle's constructor,
// not by the search.
type Oracle func(subset []string) (float64, error)

// evaluate calls the oracle and validates the result. Oracle failures
// and unusable scores abort the search as a ScoringError; substituting
// a sentinel would corrupt the tie-break between candidates. A +Inf
// score is allowed; it can never improve on the incumbent.
func evaluate(oracle Oracle, subset []string) (float64, error) {
	score, err := oracle(subset)
	if err != nil {
		return 0, errors.NewScoringError(subset, "oracle failed", err)
	}
	if math.IsNaN(score) {
		return 0, errors.NewScoringError(subset, "oracle returned NaN", nil)
	}
	if math.IsInf(score, -1) {
		return 0, errors.NewScoringError(subset, "oracle returned -Inf", nil)
	}
	return score, nil
}

// scoreCandidates evaluates every candidate subset and returns scores
// in candidate order. With parallelEval the oracle calls run
// concurrently, but results are returned positionally so callers can
// reduce them in the same order a serial loop would.
func scoreCandidates(oracle Oracle, candidates [][]string, parallelEval bool) ([]float64, error) {
	scores := make([]float64, len(candidates))

	if !parallelEval {
		for i, candidate := range candidates {
			score, err := evaluate(oracle, candidate)
			if err != nil {
				return nil, err
			}
			scores[i] = score
		}
		return scores, nil
	}

	errs := make([]error, len(candidates))
	parallel.Parallelize(len(candidates), func(start, end int) {
		for i := start; i < end; i++ {
			scores[i], errs[i] = evaluate(oracle, candidates[i])
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}

// validateUniverse rejects an empty or duplicated feature universe
// before any oracle call is made.
func validateUniverse(op string, universe []string) error {
	if len(universe) == 0 {
		return errors.NewConfigurationError(op, "empty feature universe", nil)
	}
	seen := make(map[string]bool, len(universe))
	for _, f := range universe {
		if seen[f] {
			return errors.NewConfigurationError(op, "duplicate feature in universe", f)
		}
		seen[f] = true
	}
	return nil
}
