package estimation

// beautyHashFactors picks the three Beauty factors for an edge from a fixed
// table of nine triples, selected by hashing the edge's adjusted cost and a
// caller-supplied seed. This lets a single seed fan out deterministically
// different factor triples across edges instead of one fixed triple for the
// whole search.
func beautyHashFactors(adjustedCost, seed int) BeautyFactors {
	hash := ((adjustedCost+seed)%9 + 9) % 9

	var first, second int
	switch hash {
	case 0:
		first = 1
	case 1:
		first = 2
	case 2:
		first = 3
	case 3:
		first = 1
	case 4:
		first = 2
	case 5:
		first = 3
	case 6:
		first = 1
	case 7:
		first = 2
	default: // 8
		first = 3
	}
	switch hash {
	case 0, 1, 2:
		second = first + 1
	case 3, 4, 5:
		second = first + 2
	default: // 6, 7, 8
		second = first + 3
	}
	return BeautyFactors{First: first, Second: second, Third: second + 1}
}

// GetBeautyHashEstimator is the hash-selected variant of GetBeautyEstimator:
// the factor triple is derived from (adjustedCost+seed)%9 instead of being
// supplied directly, but the rank progression and perfect-knowledge
// shortcut at rank 0 are identical.
func GetBeautyHashEstimator(info *Info, adjustedCost, seed int) (Estimator, bool) {
	if !info.TryNext {
		return nil, false
	}
	factors := beautyHashFactors(adjustedCost, seed)

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
