package estimation

import "math"

// Info carries the current cost-estimation bounds for one discovered edge.
//
// Rank only ever increases: it records how many rungs of an estimator
// ladder have already been climbed for this edge, so a re-encountered edge
// resumes rather than restarts its estimation. TryNext latches false the
// first time a ladder reports it has nothing tighter left to offer.
type Info struct {
	MinG    int
	MaxG    int
	MinCost int
	MaxCost int
	Rank    int
	TryNext bool
}

// NewInfo returns the default bounds for a freshly discovered edge: no
// knowledge of its cost yet, so min is zero and max is unbounded.
func NewInfo() Info {
	return Info{
		MinG:    0,
		MaxG:    math.MaxInt,
		MinCost: 0,
		MaxCost: math.MaxInt,
		Rank:    0,
		TryNext: true,
	}
}
