package openlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-weiss/laddersearch/evaluation"
	"github.com/eyal-weiss/laddersearch/openlist"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

type fakeOp struct{ id searchtask.OperatorID }

func (o fakeOp) ID() searchtask.OperatorID { return o.id }
func (o fakeOp) Cost() int                 { return 1 }

func TestHeap_RemoveMinOrdersByValue(t *testing.T) {
	h := openlist.NewHeap()
	h.Insert(evaluation.Context{}, openlist.Entry{Value: 5, StateID: "b"})
	h.Insert(evaluation.Context{}, openlist.Entry{Value: 1, StateID: "a"})
	h.Insert(evaluation.Context{}, openlist.Entry{Value: 3, StateID: "c"})

	e, ok := h.RemoveMin()
	require.True(t, ok)
	assert.Equal(t, "a", string(e.StateID))

	e, ok = h.RemoveMin()
	require.True(t, ok)
	assert.Equal(t, "c", string(e.StateID))
}

func TestHeap_TiesBreakByInsertionOrder(t *testing.T) {
	h := openlist.NewHeap()
	h.Insert(evaluation.Context{}, openlist.Entry{Value: 1, StateID: "first"})
	h.Insert(evaluation.Context{}, openlist.Entry{Value: 1, StateID: "second"})

	e, _ := h.RemoveMin()
	assert.Equal(t, "first", string(e.StateID))
}

func TestHeap_EmptyAfterDraining(t *testing.T) {
	h := openlist.NewHeap()
	assert.True(t, h.Empty())
	h.Insert(evaluation.Context{}, openlist.Entry{Value: 1, StateID: "a"})
	assert.False(t, h.Empty())
	_, _ = h.RemoveMin()
	assert.True(t, h.Empty())
	_, ok := h.RemoveMin()
	assert.False(t, ok)
}

func TestHeap_IsDeadEndAlwaysFalse(t *testing.T) {
	h := openlist.NewHeap()
	assert.False(t, h.IsDeadEnd(evaluation.Context{MinG: 1 << 30}))
}

func TestNoPruning_ReturnsAllOperators(t *testing.T) {
	p := openlist.NoPruning{}
	p.Initialize(nil)
	applicable := []searchtask.Operator{fakeOp{id: "a"}, fakeOp{id: "b"}}
	kept := p.PruneOperators(nil, applicable)
	assert.Equal(t, applicable, kept)
	p.PrintStatistics()
}
