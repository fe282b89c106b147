package iteratedsync

import (
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/searchstats"
	"github.com/eyal-weiss/laddersearch/searchtask"
	"github.com/eyal-weiss/laddersearch/synchronic"
)

// Run repeats synchronic searches over task, tightening target epsilon
// each iteration, until an epsilon-optimal plan is certified, the
// search is exhausted with no further improvement available, or no
// iteration ever solves the task.
func Run(task searchtask.Task, opts ...Option) (Result, error) {
	if task == nil {
		return Result{}, ErrNilTask
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.normalized()

	stats := searchstats.New()
	iter := 1
	foundSolution := false
	bestUncertaintyBound := infinity
	etaEffective := infinity
	overshoot := infinity
	targetEpsilon := cfg.InitialEpsilon
	var plan searchengine.Plan

	for {
		if iter > 1 && targetEpsilon == 1 {
			break
		}

		if iter > 1 {
			targetEpsilon = updateTargetEpsilon(targetEpsilon, cfg.InitialEpsilon, cfg.ShrinkageFactor, cfg.Threshold, overshoot)
		}

		childStats := searchstats.New()
		childOpts := append(append([]synchronic.Option{}, cfg.EngineOptions...),
			synchronic.WithEpsilon(targetEpsilon), synchronic.WithStats(childStats))
		res, err := synchronic.Run(task, childOpts...)
		if err != nil {
			return Result{}, err
		}
		iter++

		if res.Status == searchengine.Solved {
			foundSolution = true
			etaEffective = res.UncertaintyRatio
			if etaEffective < bestUncertaintyBound {
				bestUncertaintyBound = etaEffective
				plan = res.Plan
			}
		} else {
			etaEffective = infinity
		}

		overshoot = updateOvershoot(targetEpsilon, etaEffective)
		foldStats(stats, childStats)

		if !foundSolution {
			return Result{Status: searchengine.Failed, Iterations: iter - 1, Stats: stats, BestUncertaintyBound: infinity}, nil
		}
		if bestUncertaintyBound <= cfg.Epsilon {
			return Result{
				Status:               searchengine.Solved,
				Plan:                 plan,
				BestUncertaintyBound: bestUncertaintyBound,
				Iterations:           iter - 1,
				Stats:                stats,
			}, nil
		}
	}

	status := searchengine.Failed
	if foundSolution {
		status = searchengine.Solved
	}
	return Result{
		Status:               status,
		Plan:                 plan,
		BestUncertaintyBound: bestUncertaintyBound,
		Iterations:           iter - 1,
		Stats:                stats,
	}, nil
}

// updateTargetEpsilon computes the next iteration's target from how far
// the previous iteration overshot its own target, shrunk by
// shrinkageFactor; if that would not tighten target by more than
// threshold, the controller gives up and asks for an exact-cost pass.
func updateTargetEpsilon(target, initialEpsilon, shrinkageFactor, threshold, overshoot float64) float64 {
	currTarget := 1 + shrinkageFactor*(initialEpsilon-1)/overshoot
	if (1 - currTarget/target) > threshold {
		return currTarget
	}
	return 1
}

// updateOvershoot reports how far eta_effective missed target: 1 means
// right on target, +Inf means no further tightening is achievable from
// here (the previous iteration either failed or target was already 1
// without an exact match).
func updateOvershoot(targetEpsilon, etaEffective float64) float64 {
	if targetEpsilon == 1 {
		if etaEffective == 1 {
			return 1
		}
		return infinity
	}
	return (etaEffective - 1) / (targetEpsilon - 1)
}

// foldStats adds child's (freshly-zeroed, per-iteration) counters into
// the running cumulative total by plain addition.
func foldStats(parent *searchstats.Statistics, child *searchstats.Statistics) {
	parent.IncEdges(child.Edges)
	parent.IncExpanded(child.ExpandedStates)
	parent.IncEvaluatedStates(child.EvaluatedStates)
	parent.IncPrunedStates(child.PrunedStates)
	parent.IncEstimatedEdges(child.EstimatedEdges)
	parent.IncEvaluations(child.Evaluations)
	parent.IncEstimations(child.Estimations)
	parent.IncL1Estimations(child.L1Estimations)
	parent.IncL2Estimations(child.L2Estimations)
	parent.IncL3Estimations(child.L3Estimations)
	parent.IncGenerated(child.GeneratedStates)
	parent.IncGeneratedOps(child.GeneratedOps)
	parent.IncReopened(child.ReopenedStates)
	parent.IncDeadEnds(child.DeadEndStates)
}
