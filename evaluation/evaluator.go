package evaluation

import "github.com/eyal-weiss/laddersearch/searchtask"

// Context carries whatever an Evaluator needs to compute a value for one
// state: the state itself and the estimation bounds the search space
// currently believes for the cheapest known edge into it.
type Context struct {
	State     searchtask.State
	MinG      int
	MaxG      int
}

// Result is an Evaluator's verdict for one Context.
type Result struct {
	// Value is the evaluator's output, used as open-list priority.
	Value int
	// IsDeadEnd marks the state as unreachable/unsolvable from here.
	// The beauty and synchronic engines do not read it; they take a
	// state's dead-end status from OpenList.IsDeadEnd instead.
	IsDeadEnd bool
}

// Evaluator is a boundary collaborator never designed beyond this
// contract, except for EstimatedGEvaluator below.
type Evaluator interface {
	ComputeResult(ctx Context) Result
	// Caches reports whether repeated calls with an unchanged Context
	// are safe to skip (memoized). Lazy evaluation requires a caching
	// evaluator; see searchengine's setup validation.
	Caches() bool
	NotifyInitialState(state searchtask.State)
	NotifyStateTransition(parent searchtask.State, op searchtask.Operator, child searchtask.State)
}

// EstimatedGEvaluator surfaces a node's currently estimated MinG as its
// value. It is the one evaluator the core provides; it caches nothing and
// ignores path-dependent notifications, since MinG already captures
// everything path-dependent it needs.
type EstimatedGEvaluator struct{}

func (EstimatedGEvaluator) ComputeResult(ctx Context) Result {
	return Result{Value: ctx.MinG}
}

func (EstimatedGEvaluator) Caches() bool { return false }

func (EstimatedGEvaluator) NotifyInitialState(searchtask.State) {}

func (EstimatedGEvaluator) NotifyStateTransition(searchtask.State, searchtask.Operator, searchtask.State) {
}
