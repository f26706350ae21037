package selection

import (
	"math"
	"testing"
)

func TestTrackerUpdate(t *testing.T) {
	tests := []struct {
		name       string
		baseline   float64
		updates    []struct {
			subset []string
			score  float64
		}
		wantSubset []string
		wantScore  float64
		wantFlags  []bool
	}{
		{
			name:     "strict improvement replaces incumbent",
			baseline: 10.0,
			updates: []struct {
				subset []string
				score  float64
			}{
				{[]string{"a"}, 8.0},
				{[]string{"b"}, 6.0},
			},
			wantSubset: []string{"b"},
			wantScore:  6.0,
			wantFlags:  []bool{true, true},
		},
		{
			name:     "tie keeps earlier candidate",
			baseline: 10.0,
			updates: []struct {
				subset []string
				score  float64
			}{
				{[]string{"a"}, 5.0},
				{[]string{"b"}, 5.0},
			},
			wantSubset: []string{"a"},
			wantScore:  5.0,
			wantFlags:  []bool{true, false},
		},
		{
			name:     "worse candidate ignored",
			baseline: 4.0,
			updates: []struct {
				subset []string
				score  float64
			}{
				{[]string{"a"}, 9.0},
			},
			wantSubset: []string{},
			wantScore:  4.0,
			wantFlags:  []bool{false},
		},
		{
			name:     "infinite baseline always beaten by finite score",
			baseline: math.Inf(1),
			updates: []struct {
				subset []string
				score  float64
			}{
				{[]string{"a"}, 1e12},
			},
			wantSubset: []string{"a"},
			wantScore:  1e12,
			wantFlags:  []bool{true},
		},
		{
			name:     "NaN never improves",
			baseline: 10.0,
			updates: []struct {
				subset []string
				score  float64
			}{
				{[]string{"a"}, math.NaN()},
			},
			wantSubset: []string{},
			wantScore:  10.0,
			wantFlags:  []bool{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTracker(tt.baseline)
			for i, u := range tt.updates {
				got := tracker.Update(u.subset, u.score)
				if got != tt.wantFlags[i] {
					t.Errorf("Update(%v, %v) = %v, want %v", u.subset, u.score, got, tt.wantFlags[i])
				}
			}

			subset, score := tracker.Best()
			if !equalSubsets(subset, tt.wantSubset) {
				t.Errorf("Best() subset = %v, want %v", subset, tt.wantSubset)
			}
			if score != tt.wantScore {
				t.Errorf("Best() score = %v, want %v", score, tt.wantScore)
			}
		})
	}
}

func TestTrackerMonotonicScore(t *testing.T) {
	tracker := NewTracker(100.0)
	scores := []float64{90, 95, 80, 80, 120, 50, 50, 49}

	prev := tracker.Score()
	for _, s := range scores {
		tracker.Update([]string{"x"}, s)
		if tracker.Score() > prev {
			t.Fatalf("tracker score increased from %v to %v", prev, tracker.Score())
		}
		prev = tracker.Score()
	}
	if tracker.Score() != 49 {
		t.Errorf("final score = %v, want 49", tracker.Score())
	}
}

func TestTrackerCopiesSubset(t *testing.T) {
	tracker := NewTracker(10.0)
	subset := []string{"a", "b"}
	tracker.Update(subset, 5.0)

	subset[0] = "mutated"
	best, _ := tracker.Best()
	if best[0] != "a" {
		t.Errorf("tracker stored a reference to caller's slice: %v", best)
	}
}

func TestTrackerFromSeedsIncumbent(t *testing.T) {
	tracker := NewTrackerFrom([]string{"a", "b", "c"}, 7.0)

	if tracker.Update([]string{"a"}, 7.0) {
		t.Error("tie against seeded incumbent must not update")
	}
	subset, score := tracker.Best()
	if !equalSubsets(subset, []string{"a", "b", "c"}) || score != 7.0 {
		t.Errorf("Best() = %v, %v; want seeded incumbent", subset, score)
	}
}

func equalSubsets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
