package estimation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-weiss/laddersearch/estimation"
)

// --- 1. Info defaults ---

func TestNewInfo_Defaults(t *testing.T) {
	info := estimation.NewInfo()
	assert.Equal(t, 0, info.MinG)
	assert.Equal(t, math.MaxInt, info.MaxG)
	assert.Equal(t, 0, info.MinCost)
	assert.Equal(t, math.MaxInt, info.MaxCost)
	assert.Equal(t, 0, info.Rank)
	assert.True(t, info.TryNext)
}

// --- 2. Beauty ladder ---

func TestGetBeautyEstimator_ClimbsThreeRanks(t *testing.T) {
	info := estimation.NewInfo()
	factors := estimation.BeautyFactors{First: 2, Second: 3, Third: 4}

	est, ok := estimation.GetBeautyEstimator(&info, 10, factors)
	require.True(t, ok)
	lo, hi := est.Estimate()
	assert.Equal(t, 20, lo)
	assert.Equal(t, 20, hi)
	assert.Equal(t, 1, info.Rank)

	est, ok = estimation.GetBeautyEstimator(&info, 10, factors)
	require.True(t, ok)
	lo, _ = est.Estimate()
	assert.Equal(t, 30, lo)
	assert.Equal(t, 2, info.Rank)

	est, ok = estimation.GetBeautyEstimator(&info, 10, factors)
	require.True(t, ok)
	lo, _ = est.Estimate()
	assert.Equal(t, 40, lo)
	assert.Equal(t, 3, info.Rank)

	_, ok = estimation.GetBeautyEstimator(&info, 10, factors)
	assert.False(t, ok)
	assert.False(t, info.TryNext)
}

func TestGetBeautyEstimator_PerfectKnowledgeShortcut(t *testing.T) {
	info := estimation.NewInfo()
	factors := estimation.BeautyFactors{First: 2, Second: 3, Third: 4}

	est, ok := estimation.GetBeautyEstimator(&info, 0, factors)
	require.True(t, ok)
	lo, hi := est.Estimate()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
	assert.False(t, info.TryNext)
	assert.Equal(t, 0, info.Rank)
}

// --- 3. BeautyHash ladder ---

func TestGetBeautyHashEstimator_DeterministicPerSeed(t *testing.T) {
	info1 := estimation.NewInfo()
	info2 := estimation.NewInfo()

	est1, ok1 := estimation.GetBeautyHashEstimator(&info1, 12, 3)
	est2, ok2 := estimation.GetBeautyHashEstimator(&info2, 12, 3)
	require.True(t, ok1)
	require.True(t, ok2)

	lo1, _ := est1.Estimate()
	lo2, _ := est2.Estimate()
	assert.Equal(t, lo1, lo2, "same (cost, seed) must pick the same factor triple")
}

func TestGetBeautyHashEstimator_ExhaustsAfterThreeRanks(t *testing.T) {
	info := estimation.NewInfo()
	for i := 0; i < 3; i++ {
		_, ok := estimation.GetBeautyHashEstimator(&info, 7, 1)
		require.True(t, ok)
	}
	_, ok := estimation.GetBeautyHashEstimator(&info, 7, 1)
	assert.False(t, ok)
}

// --- 4. Ontario ladder ---

func TestGetOntarioEstimator_KnownCostLooksUpTable(t *testing.T) {
	info := estimation.NewInfo()
	est, ok := estimation.GetOntarioEstimator(&info, 275)
	require.True(t, ok)
	lo, hi := est.Estimate()
	assert.Equal(t, 24, lo)
	assert.Equal(t, 57, hi)
	assert.Equal(t, 1, info.Rank)

	est, ok = estimation.GetOntarioEstimator(&info, 275)
	require.True(t, ok)
	lo, hi = est.Estimate()
	assert.Equal(t, 27, lo)
	assert.Equal(t, 40, hi)

	_, ok = estimation.GetOntarioEstimator(&info, 275)
	assert.False(t, ok)
}

func TestGetOntarioEstimator_SentinelCostIsExact(t *testing.T) {
	info := estimation.NewInfo()
	est, ok := estimation.GetOntarioEstimator(&info, 10)
	require.True(t, ok)
	lo, hi := est.Estimate()
	assert.Equal(t, 10, lo)
	assert.Equal(t, 10, hi)
	assert.False(t, info.TryNext)
}

// --- 5. Stochastic ladder ---

func TestGetStochasticEstimator_AlwaysAdvanceProbabilityOne(t *testing.T) {
	info := estimation.NewInfo()
	cfg := estimation.StochasticConfig{
		FirstProbability:  1,
		SecondProbability: 1,
		ThirdProbability:  1,
	}
	est, ok := estimation.GetStochasticEstimator(&info, 5, cfg)
	require.True(t, ok)
	lo, hi := est.Estimate()
	assert.Equal(t, 5, lo)
	assert.Equal(t, 20, hi) // cost * 2 * uncertaintyFactor(2)
	assert.Equal(t, 1, info.Rank)
}

func TestGetStochasticEstimator_NeverAdvanceCollapsesToExact(t *testing.T) {
	info := estimation.NewInfo()
	cfg := estimation.StochasticConfig{FirstProbability: 0}
	est, ok := estimation.GetStochasticEstimator(&info, 5, cfg)
	require.True(t, ok)
	lo, hi := est.Estimate()
	assert.Equal(t, 5, lo)
	assert.Equal(t, 5, hi)
	assert.False(t, info.TryNext)
}

func TestGetStochasticEstimator_RankNeverResets(t *testing.T) {
	info := estimation.NewInfo()
	info.Rank = 5
	_, ok := estimation.GetStochasticEstimator(&info, 5, estimation.StochasticConfig{})
	assert.False(t, ok)
	assert.False(t, info.TryNext)
}
