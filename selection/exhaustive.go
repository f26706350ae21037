package selection

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/selago-ml/selago/pkg/log"
)

// Exhaustive evaluates every non-empty subset of the feature universe
// and returns the best-scoring one. Subsets are enumerated by size,
// 1 through len(universe), and within each size in lexicographic order
// over universe indices, so for a universe of p features the oracle is
// called exactly 2^p − 1 times. There is no early stopping; the cost
// is exponential and the strategy is intended for small universes.
func Exhaustive(universe []string, oracle Oracle, opts ...Option) (*Result, error) {
	if err := validateUniverse("selection.Exhaustive", universe); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	logger := log.With("selection.Exhaustive")

	p := len(universe)
	tracker := NewTracker(o.baseline)
	result := &Result{
		Trace: []TracePoint{{Size: 0, Score: tracker.Score()}},
	}

	for k := 1; k <= p; k++ {
		candidates := make([][]string, 0, combin.Binomial(p, k))
		gen := combin.NewCombinationGenerator(p, k)
		for gen.Next() {
			indices := gen.Combination(nil)
			subset := make([]string, k)
			for i, idx := range indices {
				subset[i] = universe[idx]
			}
			candidates = append(candidates, subset)
		}

		scores, err := scoreCandidates(oracle, candidates, o.parallelEval)
		if err != nil {
			return nil, err
		}
		result.Evaluations += len(candidates)

		for i := range candidates {
			if tracker.Update(candidates[i], scores[i]) {
				logger.Debug().
					Strs("subset", candidates[i]).
					Float64("score", scores[i]).
					Msg("new incumbent")
			}
		}

		_, best := tracker.Best()
		result.Trace = append(result.Trace, TracePoint{Size: k, Score: best})
	}

	result.Subset, result.Score = tracker.Best()
	logger.Info().
		Strs("subset", result.Subset).
		Float64("score", result.Score).
		Int("evaluations", result.Evaluations).
		Msg("exhaustive search finished")
	return result, nil
}
