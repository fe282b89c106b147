package searchengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eyal-weiss/laddersearch/searchengine"
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

func TestWithinBound(t *testing.T) {
	space := searchspace.NewSpace()
	n := space.Get(fakeState{id: "s"})
	_ = n.OpenInitial()

	assert.True(t, searchengine.WithinBound(n, fakeOp{cost: 3}, 10))
	assert.False(t, searchengine.WithinBound(n, fakeOp{cost: 10}, 10))
}

func TestCheckEngineConfigs(t *testing.T) {
	assert.ErrorIs(t, searchengine.CheckEngineConfigs(0), searchengine.ErrInput)
	assert.NoError(t, searchengine.CheckEngineConfigs(1))
}

func TestCheckLazyEvaluator(t *testing.T) {
	assert.ErrorIs(t, searchengine.CheckLazyEvaluator(false), searchengine.ErrInput)
	assert.NoError(t, searchengine.CheckLazyEvaluator(true))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "SOLVED", searchengine.Solved.String())
	assert.Equal(t, "FAILED", searchengine.Failed.String())
	assert.Equal(t, "IN_PROGRESS", searchengine.InProgress.String())
}
