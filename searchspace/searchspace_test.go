package searchspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-weiss/laddersearch/estimation"
	"github.com/eyal-weiss/laddersearch/searchspace"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

type fakeState struct{ id searchtask.StateID }

func (s fakeState) ID() searchtask.StateID { return s.id }

type fakeOp struct {
	id   searchtask.OperatorID
	cost int
}

func (o fakeOp) ID() searchtask.OperatorID { return o.id }
func (o fakeOp) Cost() int                 { return o.cost }

// --- 1. Initial node lifecycle ---

func TestSpace_OpenInitial(t *testing.T) {
	space := searchspace.NewSpace()
	root := space.Get(fakeState{id: "root"})

	require.True(t, root.IsNew())
	require.NoError(t, root.OpenInitial())
	assert.True(t, root.IsOpen())
	assert.Equal(t, 0, root.G())
	assert.Equal(t, 0, root.RealG())
	assert.False(t, root.TryNext())

	_, err := space.Get(fakeState{id: "root"}), root.OpenInitial()
	assert.ErrorIs(t, err, searchspace.ErrNotNew)
}

// --- 2. Open / Close / Reopen state machine ---

func TestSpace_OpenCloseReopen(t *testing.T) {
	space := searchspace.NewSpace()
	root := space.Get(fakeState{id: "root"})
	require.NoError(t, root.OpenInitial())

	child := space.Get(fakeState{id: "child"})
	op := fakeOp{id: "op1", cost: 5}
	est := estimation.Info{MinG: 10, MaxG: 10, MinCost: 10, MaxCost: 10, Rank: 1, TryNext: false}

	require.NoError(t, child.Open(root, op, 10, est))
	assert.True(t, child.IsOpen())
	assert.Equal(t, 10, child.G())
	assert.Equal(t, 5, child.RealG())
	assert.Equal(t, searchtask.StateID("root"), child.ParentStateID())

	require.NoError(t, child.Close())
	assert.True(t, child.IsClosed())

	tighter := estimation.Info{MinG: 3, MaxG: 3, MinCost: 3, MaxCost: 3, Rank: 2, TryNext: false}
	require.NoError(t, child.Reopen(root, op, 3, tighter))
	assert.True(t, child.IsOpen())
	assert.Equal(t, 3, child.G())
	assert.Equal(t, 3, child.EdgeAdjustedCost())
}

func TestSpace_Reopen_RejectsWeakerBound(t *testing.T) {
	space := searchspace.NewSpace()
	root := space.Get(fakeState{id: "root"})
	require.NoError(t, root.OpenInitial())

	child := space.Get(fakeState{id: "child"})
	op := fakeOp{id: "op1", cost: 5}
	est := estimation.Info{MinG: 3, MaxG: 3, Rank: 1}
	require.NoError(t, child.Open(root, op, 3, est))

	weaker := estimation.Info{MinG: 3}
	err := child.Reopen(root, op, 3, weaker)
	assert.ErrorIs(t, err, searchspace.ErrWeakerBound)
}

func TestSpace_DeadEndIsSink(t *testing.T) {
	space := searchspace.NewSpace()
	n := space.Get(fakeState{id: "s"})
	require.NoError(t, n.OpenInitial())
	n.MarkAsDeadEnd()
	assert.True(t, n.IsDeadEnd())
	assert.ErrorIs(t, n.Close(), searchspace.ErrNotOpen)
}

// --- 3. Edge identity ---

func TestSpace_IsSameEdge(t *testing.T) {
	space := searchspace.NewSpace()
	root := space.Get(fakeState{id: "root"})
	require.NoError(t, root.OpenInitial())
	child := space.Get(fakeState{id: "child"})
	op := fakeOp{id: "op1", cost: 1}
	require.NoError(t, child.Open(root, op, 1, estimation.Info{}))

	assert.True(t, child.IsSameEdge(root, op))
	assert.False(t, child.IsSameEdge(root, fakeOp{id: "op2", cost: 1}))
}

// --- 4. SetEstimationInfoBasedOnEdge resumes rank ---

func TestSetEstimationInfoBasedOnEdge_ResumesRank(t *testing.T) {
	space := searchspace.NewSpace()
	root := space.Get(fakeState{id: "root"})
	require.NoError(t, root.OpenInitial())

	child := space.Get(fakeState{id: "child"})
	op := fakeOp{id: "op1", cost: 4}
	est := estimation.Info{MinG: 4, MaxG: 8, MinCost: 4, MaxCost: 8, Rank: 2, TryNext: true}
	require.NoError(t, child.Open(root, op, 4, est))

	resumed := searchspace.SetEstimationInfoBasedOnEdge(root, child)
	assert.Equal(t, 2, resumed.Rank)
	assert.True(t, resumed.TryNext)
	assert.Equal(t, 4, resumed.MinCost)
	assert.Equal(t, root.MinG()+4, resumed.MinG)
}

// --- 5. Path tracing ---

func TestSpace_TracePath(t *testing.T) {
	space := searchspace.NewSpace()
	states := map[searchtask.StateID]fakeState{
		"root": {id: "root"}, "a": {id: "a"}, "b": {id: "b"},
	}
	lookup := func(id searchtask.StateID) searchtask.State { return states[id] }

	root := space.Get(states["root"])
	require.NoError(t, root.OpenInitial())
	a := space.Get(states["a"])
	opA := fakeOp{id: "toA", cost: 1}
	require.NoError(t, a.Open(root, opA, 1, estimation.Info{}))
	b := space.Get(states["b"])
	opB := fakeOp{id: "toB", cost: 1}
	require.NoError(t, b.Open(a, opB, 1, estimation.Info{}))

	path := space.TracePath(states["b"], lookup)
	require.Len(t, path, 2)
	assert.Equal(t, searchtask.OperatorID("toA"), path[0])
	assert.Equal(t, searchtask.OperatorID("toB"), path[1])
}
