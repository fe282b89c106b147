package synchronic

import (
	"errors"

	"github.com/eyal-weiss/laddersearch/evaluation"
	"github.com/eyal-weiss/laddersearch/openlist"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/searchstats"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Sentinel errors returned by Run's setup validation.
var (
	// ErrNilTask indicates Run was called with a nil searchtask.Task.
	ErrNilTask = errors.New("synchronic: task must not be nil")

	// ErrNilOpenList indicates Options.OpenList was explicitly set nil.
	ErrNilOpenList = errors.New("synchronic: open list must not be nil")
)

// Result is a finished (or failed) Synchronic run's outcome.
type Result struct {
	Status searchengine.Status
	Plan   searchengine.Plan
	Goal   searchtask.State

	// Cost is the goal's min_g as found during the search.
	Cost int
	// UncertaintyRatio is max_g/min_g for the goal, recomputed after
	// end-of-search refinement if that ran. 1 means the cost is exact.
	UncertaintyRatio float64
	// WithinEpsilon reports whether UncertaintyRatio <= Options.Epsilon.
	WithinEpsilon bool
}

// Options configures one Synchronic run. The zero value is not
// meaningful on its own; build one via DefaultOptions and functional
// options.
type Options struct {
	// ReopenClosed, when true, allows a closed node to transition back
	// to OPEN when a strictly tighter bound for it is discovered.
	ReopenClosed bool

	// Bound caps accumulated real_g; operators that would exceed it are
	// skipped. Defaults to searchengine.NoBound (no cap).
	Bound int

	// Epsilon is the target uncertainty ratio (max_g/min_g) an edge's
	// ladder climbs toward before settling: rungs keep being fetched
	// while the running ratio exceeds Epsilon and the ladder still has
	// something tighter to offer.
	Epsilon float64

	// EndOfSearchEstimations, when true, re-walks the found plan's edges
	// once the goal is popped if its uncertainty ratio still exceeds
	// Epsilon, trying to tighten the upper bound enough to certify it.
	EndOfSearchEstimations bool

	// AdjustedCost adjusts an operator's nominal cost into the cost the
	// engine accumulates as g. Defaults to searchengine.IdentityAdjustedCost.
	AdjustedCost searchengine.AdjustedCoster

	Evaluator evaluation.Evaluator
	OpenList  openlist.OpenList
	Pruning   openlist.PruningMethod
	Stats     *searchstats.Statistics
}

// Option is a functional option for Options.
type Option func(*Options)

func WithReopenClosed() Option { return func(o *Options) { o.ReopenClosed = true } }

func WithBound(bound int) Option { return func(o *Options) { o.Bound = bound } }

func WithEpsilon(epsilon float64) Option { return func(o *Options) { o.Epsilon = epsilon } }

func WithEndOfSearchEstimations(enabled bool) Option {
	return func(o *Options) { o.EndOfSearchEstimations = enabled }
}

func WithAdjustedCost(f searchengine.AdjustedCoster) Option {
	return func(o *Options) { o.AdjustedCost = f }
}

func WithEvaluator(e evaluation.Evaluator) Option { return func(o *Options) { o.Evaluator = e } }

func WithOpenList(ol openlist.OpenList) Option { return func(o *Options) { o.OpenList = ol } }

func WithPruning(p openlist.PruningMethod) Option { return func(o *Options) { o.Pruning = p } }

func WithStats(s *searchstats.Statistics) Option { return func(o *Options) { o.Stats = s } }

// DefaultOptions returns sensible defaults: no bound, epsilon 1 (climb
// to an exact cost), end-of-search refinement enabled, identity cost
// adjustment, EstimatedGEvaluator, a Heap open list, NoPruning, and a
// fresh Statistics.
func DefaultOptions() Options {
	return Options{
		ReopenClosed:           false,
		Bound:                  searchengine.NoBound,
		Epsilon:                1,
		EndOfSearchEstimations: true,
		AdjustedCost:           searchengine.IdentityAdjustedCost,
		Evaluator:              evaluation.EstimatedGEvaluator{},
		OpenList:               openlist.NewHeap(),
		Pruning:                openlist.NoPruning{},
		Stats:                  searchstats.New(),
	}
}
