package openlist

import (
	"github.com/eyal-weiss/laddersearch/evaluation"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Entry is one (evaluator value, state) pair an OpenList orders by.
type Entry struct {
	Value   int
	StateID searchtask.StateID
}

// OpenList is the frontier a search engine draws states from. Boundary
// collaborator: consumed, never designed beyond this contract.
type OpenList interface {
	Insert(ctx evaluation.Context, entry Entry)
	RemoveMin() (Entry, bool)
	Empty() bool
	// IsDeadEnd reports whether ctx's evaluator value marks the state
	// as unreachable, letting the caller mark it DEAD_END before ever
	// inserting it.
	IsDeadEnd(ctx evaluation.Context) bool
	Clear()
	// BoostPreferred signals that recently-inserted entries represent a
	// heuristically preferred operator and should be favored on ties.
	// Heap does not track preferred entries (its ties go to the earliest
	// insertion), so for Heap this is a no-op.
	BoostPreferred()
}

// PruningMethod filters an expanded state's applicable operators before
// successors are generated from them. Boundary collaborator.
type PruningMethod interface {
	Initialize(task searchtask.Task)
	PruneOperators(state searchtask.State, applicable []searchtask.Operator) []searchtask.Operator
	PrintStatistics()
}

// NoPruning prunes nothing; it is the trivial reference PruningMethod.
type NoPruning struct{}

func (NoPruning) Initialize(searchtask.Task) {}

func (NoPruning) PruneOperators(_ searchtask.State, applicable []searchtask.Operator) []searchtask.Operator {
	return applicable
}

func (NoPruning) PrintStatistics() {}
