package estimation

// Estimator produces a (min, max) cost bound for the edge it was built for.
// A single call to Estimate is expected; callers discard the Estimator
// afterwards and ask the ladder for the next rung if one is needed.
type Estimator interface {
	// Estimate returns the lower and upper cost bound this rung commits to.
	Estimate() (minCost, maxCost int)
}

// BoundsRatioEstimator is implemented by estimators that can report how
// much a rung narrowed an edge's bounds (upper/lower), beyond just the
// bounds themselves. GetOntarioEstimator's returned Estimator satisfies
// this; callers that need ratio-gated ladder climbing (synchronic) type
// assert for it.
type BoundsRatioEstimator interface {
	Estimator
	BoundsRatio() float64
}

type scalarEstimator struct {
	lowerBound int
}

func (e scalarEstimator) Estimate() (int, int) {
	return e.lowerBound, e.lowerBound
}

type rangeEstimator struct {
	lowerBound int
	upperBound int
}

func (e rangeEstimator) Estimate() (int, int) {
	return e.lowerBound, e.upperBound
}
