package synchronic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-weiss/laddersearch/gridtask"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/synchronic"
)

// straightGrid uses weight 10 throughout: GetOntarioEstimator treats an
// adjusted cost of 10 as a sentinel for "exact cost already known", so
// every edge resolves to a zero-width bound and the tests below don't
// depend on the measured lookup table's arbitrary (cost, rank) keys.
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
	_, err := synchronic.Run(nil)
	assert.ErrorIs(t, err, synchronic.ErrNilTask)
}

func TestRun_SolvesGrid(t *testing.T) {
	g := straightGrid()
	res, err := synchronic.Run(g)
	require.NoError(t, err)
	assert.Equal(t, searchengine.Solved, res.Status)
	assert.NotEmpty(t, res.Plan)
	assert.Greater(t, res.Cost, 0)
	assert.True(t, res.WithinEpsilon)
}

func TestRun_FailsWhenGoalUnreachable(t *testing.T) {
	weights := [][]int{{1, 1}, {1, 1}}
	g, err := gridtask.New(weights, gridtask.Cell{X: 0, Y: 0}, gridtask.Cell{X: 1, Y: 1})
	require.NoError(t, err)

	res, err := synchronic.Run(g, synchronic.WithBound(1))
	require.NoError(t, err)
	assert.Equal(t, searchengine.Failed, res.Status)
}

func TestRun_LooseEpsilonSkipsRefinement(t *testing.T) {
	g := straightGrid()
	res, err := synchronic.Run(g, synchronic.WithEpsilon(1000))
	require.NoError(t, err)
	assert.Equal(t, searchengine.Solved, res.Status)
	assert.True(t, res.WithinEpsilon)
}

func TestRun_EndOfSearchEstimationsDisabled(t *testing.T) {
	g := straightGrid()
	res, err := synchronic.Run(g, synchronic.WithEndOfSearchEstimations(false))
	require.NoError(t, err)
	assert.Equal(t, searchengine.Solved, res.Status)
}

func TestRun_ReopenClosedStillSolvesGrid(t *testing.T) {
	g := straightGrid()
	res, err := synchronic.Run(g, synchronic.WithReopenClosed())
	require.NoError(t, err)
	assert.Equal(t, searchengine.Solved, res.Status)
}
