package estimation

// BeautyFactors holds the three multiplicative factors the Beauty ladder
// applies to an edge's adjusted cost at ranks 0, 1 and 2.
type BeautyFactors struct {
	First  int
	Second int
	Third  int
}

// GetBeautyEstimator advances info by one rank and returns a scalar lower
// bound equal to the adjusted cost times the factor for that rank. Rank 0
// with a non-positive adjustedCost is treated as perfect knowledge: the
// ladder stops immediately and the adjusted cost itself is the bound.
//
// Returns (nil, false) once the ladder is exhausted (ranks beyond 2, or any
// call after the rank-0 perfect-knowledge shortcut, which itself still
// returns its exact-cost estimator).
func GetBeautyEstimator(info *Info, adjustedCost int, factors BeautyFactors) (Estimator, bool) {
	if !info.TryNext {
		return nil, false
	}

	var lowerBound int
	switch info.Rank {
	case 0:
		if adjustedCost > 0 {
			info.Rank++
			lowerBound = adjustedCost * factors.First
		} else {
			info.TryNext = false
			lowerBound = adjustedCost
		}
	case 1:
		info.Rank++
		lowerBound = adjustedCost * factors.Second
	case 2:
		info.Rank++
		lowerBound = adjustedCost * factors.Third
	default:
		info.TryNext = false
		return nil, false
	}
	return scalarEstimator{lowerBound: lowerBound}, true
}
