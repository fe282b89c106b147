package iteratedsync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-weiss/laddersearch/gridtask"
	"github.com/eyal-weiss/laddersearch/iteratedsync"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/synchronic"
)

func straightGrid() *gridtask.Grid {
	weights := [][]int{
		{10, 10, 10},
		{10, 10, 10},
		{10, 10, 10},
	}
	g, err := gridtask.New(weights, gridtask.Cell{X: 0, Y: 0}, gridtask.Cell{X: 2, Y: 2})
	if err != nil {
		panic(err)
	}
	return g
}

func TestRun_RejectsNilTask(t *testing.T) {
	_, err := iteratedsync.Run(nil)
	assert.ErrorIs(t, err, iteratedsync.ErrNilTask)
}

func TestRun_SolvesGridOnFirstIteration(t *testing.T) {
	g := straightGrid()
	res, err := iteratedsync.Run(g)
	require.NoError(t, err)
	assert.Equal(t, searchengine.Solved, res.Status)
	assert.NotEmpty(t, res.Plan)
	assert.Equal(t, 1, res.Iterations)
	assert.LessOrEqual(t, res.BestUncertaintyBound, 1.0)
}

func TestRun_FailsWhenGoalUnreachable(t *testing.T) {
	weights := [][]int{{10, 10}, {10, 10}}
	g, err := gridtask.New(weights, gridtask.Cell{X: 0, Y: 0}, gridtask.Cell{X: 1, Y: 1})
	require.NoError(t, err)

	res, err := iteratedsync.Run(g, iteratedsync.WithEngineOptions(synchronic.WithBound(1)))
	require.NoError(t, err)
	assert.Equal(t, searchengine.Failed, res.Status)
	assert.Equal(t, 1, res.Iterations)
}

func TestRun_InvalidShrinkageFactorFallsBackToOne(t *testing.T) {
	g := straightGrid()
	res, err := iteratedsync.Run(g, iteratedsync.WithShrinkageFactor(5))
	require.NoError(t, err)
	assert.Equal(t, searchengine.Solved, res.Status)
}
