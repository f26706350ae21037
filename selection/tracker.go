// Package selection implements feature-subset search over a scoring
// oracle: exhaustive enumeration, forward stepwise growth and backward
// stepwise elimination. Scores follow the mean-squared-error
// convention; lower is better.
package selection

// Tracker keeps the best (lowest-scoring) candidate solution observed
// so far in one search run. Updates use strict less-than, so the first
// candidate to reach a given score keeps it against later ties, and a
// sequence of strictly-better candidates leaves the last one stored.
type Tracker struct {
	subset []string
	score  float64
}

// NewTracker creates a tracker whose incumbent is the empty subset at
// the given baseline score.
func NewTracker(baseline float64) *Tracker {
	return &Tracker{subset: []string{}, score: baseline}
}

// NewTrackerFrom creates a tracker seeded with an explicit incumbent,
// as backward elimination does with the full-universe model.
func NewTrackerFrom(subset []string, score float64) *Tracker {
	return &Tracker{subset: append([]string(nil), subset...), score: score}
}

// Update replaces the incumbent when score is strictly lower and
// reports whether it did. The subset is copied; callers may reuse
// their slice.
func (t *Tracker) Update(subset []string, score float64) bool {
	if score < t.score {
		t.subset = append([]string(nil), subset...)
		t.score = score
		return true
	}
	return false
}

// Best returns a copy of the incumbent subset and its score.
func (t *Tracker) Best() ([]string, float64) {
	return append([]string(nil), t.subset...), t.score
}

// Score returns the incumbent score.
func (t *Tracker) Score() float64 {
	return t.score
}
