// Package evaluation defines the boundary between a search engine and the
// heuristic/priority values that steer it.
//
// Overview:
//
//	Evaluator is a boundary collaborator: this module never designs one
//	beyond the contract, except for EstimatedGEvaluator — the single
//	concrete evaluator the core itself ships, surfacing a node's MinG as
//	its value. That is the only feedback loop by which estimation bounds
//	enter open-list priority.
//
// Key features:
//
//	  - Caching: an Evaluator that can cache must report so via Caches();
//	    searchengine.CheckLazyEvaluator reports a non-caching Evaluator used
//	    lazily as searchengine.ErrInput. The engines in this module do not
//	    evaluate lazily and do not call that check.
//	  - Path-dependent hooks (NotifyInitialState, NotifyStateTransition)
//	    let an Evaluator track information that isn't a pure function of
//	    the current state alone.
package evaluation
