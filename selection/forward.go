package selection

import (
	"github.com/selago-ml/selago/pkg/log"
)

// Forward performs forward stepwise selection. Starting from the empty
// subset, each round scores every subset formed by adding one of the
// remaining features, in universe order. If any candidate strictly
// improved the incumbent, the feature from the last improving
// candidate is added permanently and a new round begins; equal-scoring
// candidates never displace an earlier one, so the round's winner is
// the last candidate to reach the round's lowest score. The search
// stops when a whole round brings no improvement, or when every
// feature has been added.
func Forward(universe []string, oracle Oracle, opts ...Option) (*Result, error) {
	if err := validateUniverse("selection.Forward", universe); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	logger := log.With("selection.Forward")

	tracker := NewTracker(o.baseline)
	current := []string{}
	inCurrent := make(map[string]bool, len(universe))

	result := &Result{
		Trace: []TracePoint{{Size: 0, Score: tracker.Score()}},
	}

	round := 0
	for len(current) < len(universe) {
		round++

		candidates := make([][]string, 0, len(universe)-len(current))
		for _, f := range universe {
			if inCurrent[f] {
				continue
			}
			candidate := make([]string, len(current), len(current)+1)
			copy(candidate, current)
			candidates = append(candidates, append(candidate, f))
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
			// Converged: no single addition beats the incumbent
			break
		}

		current = candidates[improvedIdx]
		inCurrent[current[len(current)-1]] = true

		result.Trace = append(result.Trace, TracePoint{Size: len(current), Score: tracker.Score()})
		logger.Debug().
			Int("round", round).
			Str("added", current[len(current)-1]).
			Float64("score", tracker.Score()).
			Msg("feature added")
	}

	result.Subset, result.Score = tracker.Best()
	logger.Info().
		Strs("subset", result.Subset).
		Float64("score", result.Score).
		Int("evaluations", result.Evaluations).
		Msg("forward search finished")
	return result, nil
}
