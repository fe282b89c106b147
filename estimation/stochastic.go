package estimation

import (
	"math/rand"
	"time"
)

// StochasticConfig controls the Stochastic ladder's behavior: how likely
// each rank is to offer a tighter estimator, and the simulated computation
// delay charged for using rank 1+ (a stand-in for genuinely expensive
// estimation work, modeled as a sleep rather than real computation).
type StochasticConfig struct {
	FirstProbability  float64
	SecondProbability float64
	ThirdProbability  float64
	AvgTime           time.Duration
	TimeInterval      time.Duration
	Rand              *rand.Rand // nil uses the package-level source
}

const stochasticUncertaintyFactor = 2

type stochasticEstimator struct {
	rank              int
	cost              int
	uncertaintyFactor int
	estimatedTime     time.Duration
	timeInterval      time.Duration
	rng               *rand.Rand
}

// Estimate simulates the computation cost of this rung with a sleep, then
// returns the rank-specific bound formula used by the reference ladder.
func (e stochasticEstimator) Estimate() (int, int) {
	delay := e.estimatedTime
	if e.estimatedTime > e.timeInterval/2 {
		jitter := time.Duration(0)
		if e.timeInterval > 0 {
			jitter = time.Duration(e.rng.Int63n(int64(e.timeInterval)+1)) - e.timeInterval/2
		}
		delay += jitter
	}

	switch e.rank {
	case 0:
		return e.cost, e.cost
	case 1:
		time.Sleep(delay)
		return e.cost, e.cost * 2 * e.uncertaintyFactor
	case 2:
		time.Sleep(delay)
		return e.cost * 2, e.cost * 2 * e.uncertaintyFactor
	case 3:
		time.Sleep(delay)
		return e.cost * e.uncertaintyFactor, e.cost * e.uncertaintyFactor
	default:
		return e.cost, e.cost
	}
}

// GetStochasticEstimator rolls a uniform sample against the configured
// per-rank probabilities to decide whether to advance the ladder. Rank 0
// additionally requires a positive adjustedCost; failing either check at
// rank 0 is treated as perfect knowledge (TryNext latches false, bounds
// collapse to adjustedCost). Failing the roll at rank 1 or 2 exhausts the
// ladder without collapsing to perfect knowledge.
func GetStochasticEstimator(info *Info, adjustedCost int, cfg StochasticConfig) (Estimator, bool) {
	if !info.TryNext {
		return nil, false
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sample := rng.Float64()

	switch info.Rank {
	case 0:
		if sample < cfg.FirstProbability && adjustedCost > 0 {
			info.Rank++
		} else {
			info.TryNext = false
			return scalarEstimator{lowerBound: adjustedCost}, true
		}
	case 1:
		if sample < cfg.SecondProbability {
			info.Rank++
		} else {
			info.TryNext = false
			return nil, false
		}
	case 2:
		if sample < cfg.ThirdProbability {
			info.Rank++
		} else {
			info.TryNext = false
			return nil, false
		}
	default:
		info.TryNext = false
		return nil, false
	}

	return stochasticEstimator{
		rank:              info.Rank,
		cost:              adjustedCost,
		uncertaintyFactor: stochasticUncertaintyFactor,
		estimatedTime:     cfg.AvgTime,
		timeInterval:      cfg.TimeInterval,
		rng:               rng,
	}, true
}
