package selection

import (
	"github.com/selago-ml/selago/pkg/log"
)

// Backward performs backward stepwise elimination, the mirror image of
// Forward. The incumbent starts as the full feature universe at its
// own oracle score, not the no-predictor baseline. Each round scores
// every subset formed by removing one feature currently present, in
// universe order; if any removal strictly improved the incumbent, the
// feature from the last improving candidate is dropped permanently.
// The search stops when no removal improves the incumbent, or when the
// subset becomes empty. Scoring the full universe counts as one oracle
// evaluation.
//
// When one feature remains, the round's only candidate is the empty
// subset; the oracle must score it (by convention, as the no-predictor
// mean model).
func Backward(universe []string, oracle Oracle, opts ...Option) (*Result, error) {
	if err := validateUniverse("selection.Backward", universe); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	logger := log.With("selection.Backward")

	fullScore, err := evaluate(oracle, universe)
	if err != nil {
		return nil, err
	}

	tracker := NewTrackerFrom(universe, fullScore)
	current := append([]string(nil), universe...)

	result := &Result{
		Evaluations: 1,
		Trace:       []TracePoint{{Size: len(universe), Score: fullScore}},
	}

	round := 0
	for len(current) > 0 {
		round++

		candidates := make([][]string, 0, len(current))
		removed := make([]string, 0, len(current))
		for i, f := range current {
			candidate := make([]string, 0, len(current)-1)
			candidate = append(candidate, current[:i]...)
			candidate = append(candidate, current[i+1:]...)
			candidates = append(candidates, candidate)
			removed = append(removed, f)
		}

		scores, err := scoreCandidates(oracle, candidates, o.parallelEval)
		if err != nil {
			return nil, err
		}
		result.Evaluations += len(candidates)

		improvedIdx := -1
		for i := range candidates {
			if tracker.Update(candidates[i], scores[i]) {
				improvedIdx = i
			}
		}

		if improvedIdx < 0 {
			// Converged: no single removal beats the incumbent
			break
		}

		current = candidates[improvedIdx]

		result.Trace = append(result.Trace, TracePoint{Size: len(current), Score: tracker.Score()})
		logger.Debug().
			Int("round", round).
			Str("removed", removed[improvedIdx]).
			Float64("score", tracker.Score()).
			Msg("feature removed")
	}

	result.Subset, result.Score = tracker.Best()
	logger.Info().
		Strs("subset", result.Subset).
		Float64("score", result.Score).
		Int("evaluations", result.Evaluations).
		Msg("backward search finished")
	return result, nil
}
