package synchronic

import (
	"github.com/eyal-weiss/laddersearch/estimation"
	"github.com/eyal-weiss/laddersearch/evaluation"
	"github.com/eyal-weiss/laddersearch/openlist"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/searchspace"
	"github.com/eyal-weiss/laddersearch/searchstats"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Run executes one Synchronic search over task from its initial state
// to whichever goal it reaches first under the configured options.
func Run(task searchtask.Task, opts ...Option) (Result, error) {
	if task == nil {
		return Result{}, ErrNilTask
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.OpenList == nil {
		return Result{}, ErrNilOpenList
	}

	r := &runner{
		task:   task,
		opts:   cfg,
		space:  searchspace.NewSpace(),
		stats:  cfg.Stats,
		states: make(map[searchtask.StateID]searchtask.State),
	}
	return r.run()
}

// runner holds the mutable state for a single Synchronic execution.
type runner struct {
	task   searchtask.Task
	opts   Options
	space  *searchspace.Space
	stats  *searchstats.Statistics
	states map[searchtask.StateID]searchtask.State
}

func (r *runner) lookup(id searchtask.StateID) searchtask.State { return r.states[id] }

func (r *runner) run() (Result, error) {
	initial := r.task.InitialState()
	r.states[initial.ID()] = initial

	r.opts.Evaluator.NotifyInitialState(initial)
	ctx := evaluation.Context{State: initial, MinG: 0, MaxG: 0}
	r.stats.IncEvaluatedStates(1)

	if !r.opts.OpenList.IsDeadEnd(ctx) {
		root := r.space.Get(initial)
		_ = root.OpenInitial()
		r.insert(root, ctx)
	}
	r.opts.Pruning.Initialize(r.task)

	for {
		entry, ok := r.opts.OpenList.RemoveMin()
		if !ok {
			return Result{Status: searchengine.Failed}, nil
		}
		state := r.lookup(entry.StateID)
		node := r.space.Get(state)
		if node.IsClosed() || node.IsDeadEnd() {
			continue
		}
		_ = node.Close()
		r.stats.IncExpanded(1)
		r.stats.ReportFValueProgress(node.MinG())

		if r.task.IsGoal(state) {
			return r.finish(node, state), nil
		}

		r.expand(node, state)
	}
}

// expand generates state's successors, climbs the Ontario ladder for
// each new or differently-reached edge until its bounds ratio settles
// under Options.Epsilon (or the ladder runs out of rungs), and
// opens/reopens/updates the resulting nodes. There is no l_prune-style
// discard here: Synchronic never rejects a successor on cost alone.
func (r *runner) expand(node searchspace.Node, state searchtask.State) {
	ops := r.task.Operators(state)
	r.stats.IncGeneratedOps(len(ops))
	ops = r.opts.Pruning.PruneOperators(state, ops)

	for _, op := range ops {
		if !searchengine.WithinBound(node, op, r.opts.Bound) {
			continue
		}
		child := r.task.Apply(state, op)
		r.states[child.ID()] = child
		succ := r.space.Get(child)
		r.stats.IncGenerated(1)
		r.opts.Evaluator.NotifyStateTransition(state, op, child)

		if succ.IsDeadEnd() {
			continue
		}

		adjustedCost := r.opts.AdjustedCost(op)

		if succ.IsNew() {
			r.stats.IncEdges(1)
			info, _ := r.estimateEdge(node, succ, true, adjustedCost)

			ctx := evaluation.Context{State: child, MinG: info.MinG, MaxG: info.MaxG}
			if r.opts.OpenList.IsDeadEnd(ctx) {
				succ.MarkAsDeadEnd()
				r.stats.IncDeadEnds(1)
				continue
			}

			_ = succ.Open(node, op, adjustedCost, info)
			r.insert(succ, ctx)
			continue
		}

		var info estimation.Info
		if succ.IsSameEdge(node, op) {
			info = searchspace.SetEstimationInfoBasedOnEdge(node, succ)
		} else {
			r.stats.IncEdges(1)
			info, _ = r.estimateEdge(node, succ, false, adjustedCost)
		}

		if info.MinG < succ.MinG() {
			wasClosed := succ.IsClosed()
			if r.opts.ReopenClosed {
				if wasClosed {
					r.stats.IncReopened(1)
				}
				_ = succ.Reopen(node, op, adjustedCost, info)
				r.insert(succ, evaluation.Context{State: child, MinG: succ.MinG(), MaxG: succ.MaxG()})
			} else {
				_ = succ.UpdateParent(node, op, adjustedCost, info)
			}
		}
	}
}

// estimateEdge climbs the Ontario ladder for the edge (node -op-> succ).
// The first rung is always fetched and applied; after that, a rung is
// fetched again only while the running bounds ratio (eta) still
// exceeds Options.Epsilon — mirroring the do-while-gated-by-ratio shape
// of the original, as opposed to beauty's min_g-threshold gating.
func (r *runner) estimateEdge(node, succ searchspace.Node, isNew bool, adjustedCost int) (estimation.Info, float64) {
	info := estimation.NewInfo()
	est, ok := estimation.GetOntarioEstimator(&info, adjustedCost)
	if info.TryNext {
		r.stats.IncEstimatedEdges(1)
	}

	eta := 1.0
	first := true
	for {
		if !first {
			est, ok = estimation.GetOntarioEstimator(&info, adjustedCost)
			if !ok {
				break
			}
		}
		first = false

		if info.TryNext {
			r.stats.IncEstimations(1)
		}
		switch info.Rank {
		case 1:
			r.stats.IncL1Estimations(1)
		case 2:
			r.stats.IncL2Estimations(1)
		}

		minCost, maxCost := est.Estimate()
		info.MinCost = minCost
		info.MaxCost = maxCost
		info.MinG = node.MinG() + minCost
		info.MaxG = node.MaxG() + maxCost

		if br, isRanged := est.(estimation.BoundsRatioEstimator); isRanged && br.BoundsRatio() > 1 {
			eta = float64(info.MaxG) / float64(info.MinG)
		}

		if isNew {
			if eta <= r.opts.Epsilon {
				break
			}
		} else if eta <= r.opts.Epsilon || info.MinG >= succ.MinG() {
			break
		}
	}
	return info, eta
}

// insert evaluates succ under ctx and inserts it into the open list.
func (r *runner) insert(succ searchspace.Node, ctx evaluation.Context) {
	res := r.opts.Evaluator.ComputeResult(ctx)
	r.stats.IncEvaluatedStates(1)
	r.stats.IncEvaluations(1)
	r.opts.OpenList.Insert(ctx, openlist.Entry{Value: res.Value, StateID: ctx.State.ID()})
}

// finish computes the goal's uncertainty ratio and, if it is still
// above Options.Epsilon and end-of-search refinement is enabled,
// re-walks the plan's edges from goal to root trying to tighten the
// upper bound enough to bring the ratio within Epsilon. Unlike beauty's
// refinement, the lower bound used for the ratio test (chosenLB) stays
// fixed at the value the goal was first reached with; only the upper
// bound accumulates further.
func (r *runner) finish(goalNode searchspace.Node, goalState searchtask.State) Result {
	cost := goalNode.MinG()
	ratio := r.goalRatio(goalNode)

	if r.opts.EndOfSearchEstimations && ratio > r.opts.Epsilon {
		ratio = r.refine(goalState, goalNode)
	}

	plan := searchengine.ExtractPlan(r.space, goalState, r.lookup)
	return Result{
		Status:           searchengine.Solved,
		Plan:             plan,
		Goal:             goalState,
		Cost:             cost,
		UncertaintyRatio: ratio,
		WithinEpsilon:    ratio <= r.opts.Epsilon,
	}
}

func (r *runner) goalRatio(goalNode searchspace.Node) float64 {
	minG, maxG := goalNode.MinG(), goalNode.MaxG()
	switch {
	case minG > 0:
		return float64(maxG) / float64(minG)
	case minG == maxG:
		return 1
	default:
		return 1
	}
}

// refine re-walks the found plan's edges from goal to root, fetching
// further Ontario rungs for each and accumulating their max-cost deltas
// into a running upper bound. The lower bound used for the ratio test,
// chosenLB, is fixed at the goal's min_g as first found and never
// updated (the original tracks a matching lower_bound local but never
// reads it again after seeding chosen_LB, so it is dropped here).
// Returns as soon as the ratio test is satisfied, possibly before
// reaching the root.
func (r *runner) refine(goalState searchtask.State, goalNode searchspace.Node) float64 {
	chosenLB := goalNode.MinG()
	upperBound := goalNode.MaxG()

	curr := goalState
	for {
		node := r.space.Get(curr)
		creatingOp := node.CreatingOperator()
		if creatingOp == searchspace.NoOperator {
			break
		}
		parentState := r.lookup(node.ParentStateID())
		parentNode := r.space.Get(parentState)
		info := searchspace.SetEstimationInfoBasedOnEdge(parentNode, node)
		adjustedCost := node.EdgeAdjustedCost()

		est, ok := estimation.GetOntarioEstimator(&info, adjustedCost)
		for ok {
			r.stats.IncEstimations(1)
			prevMaxCost := info.MaxCost
			minCost, maxCost := est.Estimate()
			info.MinCost = minCost
			info.MaxCost = maxCost
			upperBound += info.MaxCost - prevMaxCost

			ratio := float64(upperBound) / float64(chosenLB)
			if ratio <= r.opts.Epsilon {
				return ratio
			}
			est, ok = estimation.GetOntarioEstimator(&info, adjustedCost)
		}
		curr = parentState
	}
	return float64(upperBound) / float64(chosenLB)
}
