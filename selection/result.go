package selection

// TracePoint records the incumbent after one accepted step of a
// search: the subset size and its score.
type TracePoint struct {
	Size  int
	Score float64
}

// Result is the outcome of a search run.
type Result struct {
	// Subset is the winning feature subset, in universe order for
	// stepwise strategies and combination order for exhaustive search.
	Subset []string
	// Score is the winning subset's oracle score.
	Score float64
	// Evaluations counts oracle calls made during the search.
	Evaluations int
	// Trace holds the incumbent after each accepted step, suitable
	// for plotting score against subset size.
	Trace []TracePoint
}
