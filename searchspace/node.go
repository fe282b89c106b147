package searchspace

import (
	"github.com/eyal-weiss/laddersearch/estimation"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Node is a thin, transient handle pairing a state with its *NodeInfo.
// It owns nothing; all mutation happens through its methods, which mutate
// the underlying NodeInfo owned by the Space registry.
type Node struct {
	State searchtask.State
	Info  *NodeInfo
}

func (n Node) IsNew() bool      { return n.Info.Status == New }
func (n Node) IsOpen() bool     { return n.Info.Status == Open }
func (n Node) IsClosed() bool   { return n.Info.Status == Closed }
func (n Node) IsDeadEnd() bool  { return n.Info.Status == DeadEnd }
func (n Node) TryNext() bool    { return n.Info.CurrEstimation.TryNext }
func (n Node) G() int           { return n.Info.G }
func (n Node) RealG() int       { return n.Info.RealG }
func (n Node) MinG() int        { return n.Info.CurrEstimation.MinG }
func (n Node) MaxG() int        { return n.Info.CurrEstimation.MaxG }
func (n Node) MinCost() int     { return n.Info.CurrEstimation.MinCost }
func (n Node) MaxCost() int     { return n.Info.CurrEstimation.MaxCost }
func (n Node) Rank() int        { return n.Info.CurrEstimation.Rank }
func (n Node) ParentStateID() searchtask.StateID       { return n.Info.ParentStateID }
func (n Node) CreatingOperator() searchtask.OperatorID { return n.Info.CreatingOperator }
func (n Node) EdgeAdjustedCost() int                   { return n.Info.EdgeAdjustedCost }

// IsSameEdge reports whether this node's recorded parent and creating
// operator both match parent/op — used to skip re-estimating an edge the
// search has already measured.
func (n Node) IsSameEdge(parent Node, op searchtask.Operator) bool {
	return n.Info.ParentStateID == parent.State.ID() && n.Info.CreatingOperator == op.ID()
}

// OpenInitial transitions a NEW node straight to OPEN as the search root:
// zero cost, no parent, and an estimation already fully resolved (so the
// root is never re-estimated).
func (n Node) OpenInitial() error {
	if n.Info.Status != New {
		return ErrNotNew
	}
	n.Info.Status = Open
	n.Info.G = 0
	n.Info.RealG = 0
	n.Info.ParentStateID = NoState
	n.Info.CreatingOperator = NoOperator
	n.Info.CurrEstimation = estimation.Info{
		MinG: 0, MaxG: 0, MinCost: 0, MaxCost: 0, Rank: 0, TryNext: false,
	}
	return nil
}

// Open transitions a NEW node to OPEN as a freshly generated successor.
func (n Node) Open(parent Node, op searchtask.Operator, adjustedCost int, est estimation.Info) error {
	if n.Info.Status != New {
		return ErrNotNew
	}
	n.setFromParent(parent, op, adjustedCost, est)
	n.Info.Status = Open
	return nil
}

// Reopen transitions an OPEN or CLOSED node back to OPEN. Callers must
// only call this when est.MinG is strictly tighter than the node's
// current MinG; Reopen itself enforces that invariant.
func (n Node) Reopen(parent Node, op searchtask.Operator, adjustedCost int, est estimation.Info) error {
	if n.Info.Status != Open && n.Info.Status != Closed {
		return ErrNotReopenable
	}
	if est.MinG >= n.Info.CurrEstimation.MinG {
		return ErrWeakerBound
	}
	n.setFromParent(parent, op, adjustedCost, est)
	n.Info.Status = Open
	return nil
}

// UpdateParent behaves exactly like Reopen except it never changes
// Status — used when closed-node reopening is disabled by policy but a
// tighter bound for an OPEN or CLOSED node should still be recorded.
func (n Node) UpdateParent(parent Node, op searchtask.Operator, adjustedCost int, est estimation.Info) error {
	if n.Info.Status != Open && n.Info.Status != Closed {
		return ErrNotReopenable
	}
	if est.MinG >= n.Info.CurrEstimation.MinG {
		return ErrWeakerBound
	}
	n.setFromParent(parent, op, adjustedCost, est)
	return nil
}

func (n Node) setFromParent(parent Node, op searchtask.Operator, adjustedCost int, est estimation.Info) {
	n.Info.G = parent.Info.G + adjustedCost
	n.Info.RealG = parent.Info.RealG + op.Cost()
	n.Info.EdgeAdjustedCost = adjustedCost
	n.Info.CurrEstimation = est
	n.Info.ParentStateID = parent.State.ID()
	n.Info.CreatingOperator = op.ID()
}

// Close transitions an OPEN node to CLOSED.
func (n Node) Close() error {
	if n.Info.Status != Open {
		return ErrNotOpen
	}
	n.Info.Status = Closed
	return nil
}

// MarkAsDeadEnd moves the node to the DEAD_END sink from any status.
func (n Node) MarkAsDeadEnd() {
	n.Info.Status = DeadEnd
}
