package searchspace

import (
	"errors"

	"github.com/eyal-weiss/laddersearch/estimation"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Sentinel errors returned by Space/Node operations.
var (
	// ErrNotOpen indicates Close was called on a node that isn't OPEN.
	ErrNotOpen = errors.New("searchspace: node is not open")

	// ErrNotReopenable indicates Reopen/UpdateParent was called on a
	// node that is neither OPEN nor CLOSED.
	ErrNotReopenable = errors.New("searchspace: node is not open or closed")

	// ErrNotNew indicates OpenInitial/Open was called on a node that
	// already left the NEW status.
	ErrNotNew = errors.New("searchspace: node is not new")

	// ErrWeakerBound indicates Reopen/UpdateParent was attempted with a bound that
	// does not strictly improve on the node's current min_g.
	ErrWeakerBound = errors.New("searchspace: reopen requires a strictly tighter bound")
)

// Status is a node's position in the NEW/OPEN/CLOSED/DEAD_END lifecycle.
type Status int

const (
	New Status = iota
	Open
	Closed
	DeadEnd
)

func (s Status) String() string {
	switch s {
	case New:
		return "NEW"
	case Open:
		return "OPEN"
	case Closed:
		return "CLOSED"
	case DeadEnd:
		return "DEAD_END"
	default:
		return "UNKNOWN"
	}
}

// NoOperator is the sentinel "no creating operator" marker for the
// initial state (which has no parent edge).
const NoOperator searchtask.OperatorID = ""

// NoState is the sentinel "no parent state" marker for the initial state.
const NoState searchtask.StateID = ""

// NodeInfo is the per-state bookkeeping owned exclusively by a Space's
// registry. It is never constructed directly by callers outside this
// package; Space.Get creates it lazily on first access.
type NodeInfo struct {
	Status Status
	G      int // adjusted cost from the start state
	RealG  int // unadjusted (nominal) cost from the start state
	// EdgeAdjustedCost is the adjusted cost of the single edge
	// (ParentStateID -creating_operator-> this state), as opposed to G
	// which accumulates from the root. End-of-search refinement needs
	// this per-edge value to re-walk the found plan and re-invoke the
	// estimator ladder on each historical edge.
	EdgeAdjustedCost int
	ParentStateID    searchtask.StateID
	CreatingOperator searchtask.OperatorID
	CurrEstimation   estimation.Info
}

func newNodeInfo() *NodeInfo {
	return &NodeInfo{Status: New}
}
