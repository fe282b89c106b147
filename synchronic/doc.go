// Package synchronic implements the SynchronicEstimationSearch engine: a
// best-first search whose estimation ladder climbs the Ontario
// range-estimator instead of Beauty's scalar one, gated by an
// uncertainty-ratio threshold (target epsilon) rather than a min_g
// threshold.
//
// Overview:
//
// Where Beauty stops climbing an edge's ladder once its min_g clears a
// fixed threshold, Synchronic stops once the edge's own bounds ratio
// (max_g/min_g) — its "effective uncertainty" — clears target epsilon,
// or the ladder has nothing tighter to offer. A goal's own uncertainty
// ratio (max_g/min_g at the moment it is popped) decides whether
// end-of-search refinement runs at all: if it is already within
// epsilon, Synchronic reports success immediately. Otherwise it
// refines by re-walking the plan's edges from goal to root, re-fetching
// estimator rungs and recomputing both bounds — and, unlike Beauty, the
// lower bound used for the ratio test (chosen_LB) is fixed at the value
// found when the goal was first reached, never updated mid-refinement.
//
// Key features:
//
//   - Ratio-gated ladder climbing via GetOntarioEstimator's BoundsRatio.
//   - Optional end-of-search refinement (Options.EndOfSearchEstimations).
//   - Closed-node reopening is optional, exactly as in beauty.
//
// Error handling: Run returns ErrNilTask/ErrNilOpenList for setup
// mistakes; the run's outcome (and its final uncertainty ratio) is
// reported through Result.
package synchronic
