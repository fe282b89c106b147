package searchengine

import (
	"errors"
	"fmt"
	"math"

	"github.com/eyal-weiss/laddersearch/searchspace"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Status is a search run's outcome.
type Status int

const (
	InProgress Status = iota
	Solved
	Failed
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "SOLVED"
	case Failed:
		return "FAILED"
	default:
		return "IN_PROGRESS"
	}
}

// Sentinel errors for the two non-FAILED stopping conditions.
var (
	// ErrInput marks a configuration error discovered at setup time —
	// e.g. an empty engine_configs list for a driver, or a non-caching
	// evaluator configured for lazy evaluation.
	ErrInput = errors.New("searchengine: invalid configuration")

	// ErrCritical marks a control-flow error during a run — currently
	// only AnytimeBeauty's iteration-cap breach.
	ErrCritical = errors.New("searchengine: critical control-flow error")
)

// NoBound is the default "no upper bound on accumulated real_g" value.
const NoBound = math.MaxInt

// AdjustedCoster adjusts an operator's nominal cost into the cost the
// engines accumulate as g (as opposed to real_g, which always uses
// op.Cost() directly). A host supplies this based on its own
// cost-transformation option; the identity adjustment is the default.
type AdjustedCoster func(op searchtask.Operator) int

// IdentityAdjustedCost is the default AdjustedCoster: adjusted cost
// equals nominal cost.
func IdentityAdjustedCost(op searchtask.Operator) int { return op.Cost() }

// WithinBound reports whether accepting op from node would keep
// accumulated real_g strictly under bound.
func WithinBound(node searchspace.Node, op searchtask.Operator, bound int) bool {
	return node.RealG()+op.Cost() < bound
}

// Plan is the operator sequence a solved search extracted from its
// search space, root to goal.
type Plan []searchtask.OperatorID

// ExtractPlan walks searchspace's recorded backlinks from goalState to
// the root and returns the plan in root-to-goal order.
func ExtractPlan(space *searchspace.Space, goalState searchtask.State, lookup func(searchtask.StateID) searchtask.State) Plan {
	return space.TracePath(goalState, lookup)
}

// CheckEngineConfigs validates the engine_configs option the iterated
// drivers require: it must be non-empty.
func CheckEngineConfigs(n int) error {
	if n == 0 {
		return fmt.Errorf("%w: engine_configs must not be empty", ErrInput)
	}
	return nil
}

// CheckLazyEvaluator validates that a lazily-used evaluator caches its
// results, per spec.md §6/§7.
func CheckLazyEvaluator(caches bool) error {
	if !caches {
		return fmt.Errorf("%w: lazy evaluation requires a caching evaluator", ErrInput)
	}
	return nil
}
