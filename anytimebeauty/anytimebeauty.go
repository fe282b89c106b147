package anytimebeauty

import (
	"github.com/eyal-weiss/laddersearch/beauty"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/searchstats"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Run repeats Beauty searches over task, raising l_est/l_prune from
// unconstrained toward the best certified upper bound each iteration,
// until an iteration certifies its plan optimal, an iteration fails to
// solve the task, or the iteration cap is breached.
func Run(task searchtask.Task, opts ...Option) (Result, error) {
	if task == nil {
		return Result{}, ErrNilTask
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	stats := searchstats.New()
	iter := 1
	solutionObtained := false
	optimal := false
	lLow := 0
	lHigh := searchengine.NoBound
	var plan searchengine.Plan

	for {
		if iter > cfg.MaxIter {
			return Result{}, searchengine.ErrCritical
		}

		lEst, lPrune := boundsForIteration(iter, cfg.MaxIter, lLow, lHigh)

		childStats := searchstats.New()
		childOpts := append(append([]beauty.Option{}, cfg.EngineOptions...),
			beauty.WithEstimationBounds(lEst, lPrune), beauty.WithStats(childStats))
		res, err := beauty.Run(task, childOpts...)
		if err != nil {
			return Result{}, err
		}
		iter++

		if res.Status == searchengine.Solved {
			solutionObtained = true
			lLow = res.Cost
			optimal = res.Optimal
			if res.RefinedCost <= lHigh {
				lHigh = res.RefinedCost
				plan = res.Plan
			}
		} else {
			solutionObtained = false
		}

		foldStats(stats, childStats)

		if !solutionObtained {
			return Result{Status: searchengine.Failed, Iterations: iter - 1, Stats: stats}, nil
		}
		if optimal {
			return Result{
				Status:     searchengine.Solved,
				Plan:       plan,
				Cost:       lHigh,
				Optimal:    true,
				Iterations: iter - 1,
				Stats:      stats,
			}, nil
		}
	}
}

// boundsForIteration picks (l_est, l_prune) the way the original's step
// does: unconstrained on the first iteration, the previous best lower
// and upper bound on intermediate iterations, and the best upper bound
// for both on the final iteration (a forced re-certification).
func boundsForIteration(iter, maxIter, lLow, lHigh int) (lEst, lPrune int) {
	switch {
	case iter == maxIter:
		return lHigh, lHigh
	case iter > 1:
		return lLow, lHigh
	default:
		return 0, searchengine.NoBound
	}
}

// foldStats adds child's per-iteration counters into the running
// cumulative total. L1/L2/L3 estimation counts are folded by the
// original's abs-diff rule: the delta added is abs(the parent's
// existing cumulative total for that rank minus the child's own fresh
// per-iteration total), not the child's raw count. This is a property
// of the system being reproduced, not a computation this port invented
// — see package doc and DESIGN.md.
func foldStats(parent *searchstats.Statistics, child *searchstats.Statistics) {
	l1Diff := absInt(parent.L1Estimations - child.L1Estimations)
	l2Diff := absInt(parent.L2Estimations - child.L2Estimations)
	l3Diff := absInt(parent.L3Estimations - child.L3Estimations)

	parent.IncEdges(child.Edges)
	parent.IncExpanded(child.ExpandedStates)
	parent.IncPrunedStates(child.PrunedStates)
	parent.IncEvaluatedStates(child.EvaluatedStates)
	parent.IncEstimatedEdges(child.EstimatedEdges)
	parent.IncL1Estimations(l1Diff)
	parent.IncL2Estimations(l2Diff)
	parent.IncL3Estimations(l3Diff)
	parent.IncEvaluations(child.Evaluations)
	parent.IncEstimations(l1Diff + l2Diff + l3Diff)
	parent.IncGenerated(child.GeneratedStates)
	parent.IncGeneratedOps(child.GeneratedOps)
	parent.IncReopened(child.ReopenedStates)
	parent.IncDeadEnds(child.DeadEndStates)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
