package beauty

import (
	"github.com/eyal-weiss/laddersearch/estimation"
	"github.com/eyal-weiss/laddersearch/evaluation"
	"github.com/eyal-weiss/laddersearch/openlist"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/searchspace"
	"github.com/eyal-weiss/laddersearch/searchstats"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Run executes one Beauty search over task from its initial state to
// whichever goal it reaches first under the configured options.
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

// runner holds the mutable state for a single Beauty execution.
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
			return r.finish(state), nil
		}

		r.expand(node, state)
	}
}

// expand generates state's successors, estimates each new or
// differently-reached edge rung by rung up to l_est/l_prune, and
// opens/reopens/updates the resulting nodes.
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
			info := r.estimateEdge(node, succ, true, adjustedCost)

			ctx := evaluation.Context{State: child, MinG: info.MinG, MaxG: info.MaxG}
			if r.opts.OpenList.IsDeadEnd(ctx) {
				succ.MarkAsDeadEnd()
				r.stats.IncDeadEnds(1)
				continue
			}
			if info.MinG > r.opts.LPrune {
				r.stats.IncPrunedStates(1)
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
			info = r.estimateEdge(node, succ, false, adjustedCost)
		}

		if info.MinG < succ.MinG() && info.MinG <= r.opts.LPrune {
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

// estimateEdge climbs the configured ladder for the edge (node -op->
// succ), stopping once l_est is cleared (new successor), or once l_est
// is cleared or the bound is no tighter than succ's current one
// (re-encountered successor via a different edge).
func (r *runner) estimateEdge(node, succ searchspace.Node, isNew bool, adjustedCost int) estimation.Info {
	info := estimation.NewInfo()
	est, ok := r.opts.getEstimator(&info, adjustedCost)
	if info.TryNext {
		r.stats.IncEstimatedEdges(1)
	}

	for ok {
		if info.TryNext {
			r.stats.IncEstimations(1)
		}
		switch info.Rank {
		case 1:
			r.stats.IncL1Estimations(1)
		case 2:
			r.stats.IncL2Estimations(1)
		case 3:
			r.stats.IncL3Estimations(1)
		}

		minCost, maxCost := est.Estimate()
		info.MinCost = minCost
		info.MaxCost = maxCost
		info.MinG = node.MinG() + minCost
		info.MaxG = node.MaxG() + maxCost

		if isNew {
			if info.MinG > r.opts.LEst {
				break
			}
		} else if info.MinG > r.opts.LEst || info.MinG >= succ.MinG() {
			break
		}
		est, ok = r.opts.getEstimator(&info, adjustedCost)
	}
	return info
}

// insert evaluates succ under ctx and inserts it into the open list.
// The dead-end check already happened for new successors before Open
// was called; reopened successors never re-check it, matching the
// original (dead-end-ness is only ever decided once, at first sight).
func (r *runner) insert(succ searchspace.Node, ctx evaluation.Context) {
	res := r.opts.Evaluator.ComputeResult(ctx)
	r.stats.IncEvaluatedStates(1)
	r.stats.IncEvaluations(1)
	r.opts.OpenList.Insert(ctx, openlist.Entry{Value: res.Value, StateID: ctx.State.ID()})
}

// finish runs Beauty's end-of-search refinement: it re-walks the found
// plan's edges from goal to root, re-invoking the ladder on each as far
// as it still has rungs to offer, and compares the refined bound
// against the open list's runner-up to decide optimality.
func (r *runner) finish(goalState searchtask.State) Result {
	goalNode := r.space.Get(goalState)
	cost := goalNode.MinG()
	lowerBound := cost

	lAlt := searchengine.NoBound
	if entry, ok := r.opts.OpenList.RemoveMin(); ok {
		lAlt = r.space.Get(r.lookup(entry.StateID)).MinG()
	}

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

		est, ok := r.opts.getEstimator(&info, adjustedCost)
		for ok {
			r.stats.IncEstimations(1)
			switch info.Rank {
			case 2:
				r.stats.IncL2Estimations(1)
			case 3:
				r.stats.IncL3Estimations(1)
			}
			prevMinCost := info.MinCost
			minCost, maxCost := est.Estimate()
			info.MinCost = minCost
			info.MaxCost = maxCost
			lowerBound += info.MinCost - prevMinCost
			est, ok = r.opts.getEstimator(&info, adjustedCost)
		}
		curr = parentState
	}

	refined := lowerBound
	optimal := !(lowerBound > lAlt && refined > cost)

	plan := searchengine.ExtractPlan(r.space, goalState, r.lookup)
	return Result{
		Status:      searchengine.Solved,
		Plan:        plan,
		Goal:        goalState,
		Cost:        cost,
		RefinedCost: refined,
		Optimal:     optimal,
	}
}
