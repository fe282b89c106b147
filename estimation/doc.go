// Package estimation holds the bounds an edge's cost is currently known to,
// and the ladder of estimators that progressively tighten those bounds.
//
// Overview:
//
//	Every discovered edge starts with unknown cost bounds (Info, produced by
//	NewInfo). An estimator ladder is queried with its Get*Estimator function
//	(GetBeautyEstimator, GetBeautyHashEstimator, GetOntarioEstimator,
//	GetStochasticEstimator), each call producing an Estimator that can be
//	asked to Estimate a (min, max) cost pair. Calling the same function
//	again on the same Info advances its Rank and
//	either returns a tighter estimator or signals, via TryNext, that the
//	ladder is exhausted and the current bounds are final.
//
// When to use:
//
//	Wire one of the four ladders (Beauty, BeautyHash, Ontario, Stochastic)
//	into a search engine's estimation loop. Beauty and BeautyHash return a
//	single lower bound per rank, reported by Estimate as both the min and
//	the max value; Ontario and Stochastic return distinct lower and upper
//	bounds.
//
// Key features:
//
//	  - Info.Rank is monotonically non-decreasing and never resets.
//	  - Info.TryNext flips true→false exactly once per edge and never back.
//	  - All four ladders share the same Get*Estimator/Estimate shape so a
//	    search engine can be written against the Estimator interface alone.
//
// Error handling:
//
//	Each Get*Estimator returns (nil, false) once the ladder is exhausted rather
//	than a typed error — exhaustion is an expected, frequent outcome, not a
//	failure.
//
// Thread safety:
//
//	Info and the estimators are not safe for concurrent use; callers in a
//	single-threaded search loop don't need to guard them.
package estimation
