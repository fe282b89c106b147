package searchspace

import (
	"github.com/eyal-weiss/laddersearch/estimation"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Space is the registry of NodeInfo keyed by state identity. It is the
// sole owner of node metadata; Node handles returned by Get are transient
// views with no ownership of their own.
type Space struct {
	infos map[searchtask.StateID]*NodeInfo
}

// NewSpace returns an empty registry.
func NewSpace() *Space {
	return &Space{infos: make(map[searchtask.StateID]*NodeInfo)}
}

// Get returns the Node handle for state, creating its NodeInfo (as NEW)
// on first access.
func (s *Space) Get(state searchtask.State) Node {
	info, ok := s.infos[state.ID()]
	if !ok {
		info = newNodeInfo()
		s.infos[state.ID()] = info
	}
	return Node{State: state, Info: info}
}

// SetEstimationInfoBasedOnEdge rebuilds a fresh estimation.Info for the
// edge (parent -> curr) from curr's already-recorded per-edge bounds and
// parent's current g-bounds. This is how a re-encountered edge resumes
// its ladder rank instead of restarting estimation from rank 0.
func SetEstimationInfoBasedOnEdge(parent, curr Node) estimation.Info {
	info := estimation.Info{
		TryNext: curr.TryNext(),
		Rank:    curr.Rank(),
		MinCost: curr.MinCost(),
		MaxCost: curr.MaxCost(),
	}
	info.MinG = parent.MinG() + info.MinCost
	info.MaxG = parent.MaxG() + info.MaxCost
	return info
}

// TracePath walks creating-operator backlinks from goalState to the
// search root and returns the operator sequence in root-to-goal order.
// lookup resolves a StateID back to a searchtask.State (typically backed
// by the same state registry the task uses to construct successors).
func (s *Space) TracePath(goalState searchtask.State, lookup func(searchtask.StateID) searchtask.State) []searchtask.OperatorID {
	var reversed []searchtask.OperatorID
	current := goalState
	for {
		info := s.infos[current.ID()]
		if info == nil || info.CreatingOperator == NoOperator {
			break
		}
		reversed = append(reversed, info.CreatingOperator)
		current = lookup(info.ParentStateID)
	}
	path := make([]searchtask.OperatorID, len(reversed))
	for i, op := range reversed {
		path[len(reversed)-1-i] = op
	}
	return path
}
