package beauty

import (
	"errors"

	"github.com/eyal-weiss/laddersearch/estimation"
	"github.com/eyal-weiss/laddersearch/evaluation"
	"github.com/eyal-weiss/laddersearch/openlist"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/searchstats"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

// Sentinel errors returned by Run's setup validation.
var (
	// ErrNilTask indicates Run was called with a nil searchtask.Task.
	ErrNilTask = errors.New("beauty: task must not be nil")

	// ErrNilOpenList indicates Options.OpenList was explicitly set nil.
	ErrNilOpenList = errors.New("beauty: open list must not be nil")
)

// Ladder selects which estimation family a run climbs. The shipped
// reference behavior always climbs BeautyHash; plain Beauty with caller
// supplied factors is offered for callers who want a fixed triple
// instead of the hash-selected one.
type Ladder int

const (
	LadderBeautyHash Ladder = iota
	LadderBeauty
)

// Result is a finished (or failed) Beauty run's outcome.
type Result struct {
	Status searchengine.Status
	Plan   searchengine.Plan
	Goal   searchtask.State

	// Cost is the goal's min_g as found during the search, before
	// end-of-search refinement. Zero if Status != Solved.
	Cost int
	// RefinedCost is Cost after re-walking the plan's edges and climbing
	// each edge's remaining ladder rungs; RefinedCost >= Cost always.
	RefinedCost int
	// Optimal reports whether RefinedCost is certifiably the true
	// optimum, given what the open list's runner-up entry and the
	// ladder's remaining rungs could still reveal.
	Optimal bool
}

// Options configures one Beauty run. The zero value is not meaningful
// on its own; build one via DefaultOptions and functional options.
type Options struct {
	// ReopenClosed, when true, allows a closed node to transition back
	// to OPEN (and be reinserted) when a strictly tighter bound for it
	// is discovered. When false, the tighter bound is still recorded
	// (UpdateParent) but the node stays closed.
	ReopenClosed bool

	// Bound caps accumulated real_g; operators that would exceed it are
	// skipped. Defaults to searchengine.NoBound (no cap).
	Bound int

	// LEst is the min_g threshold for ladder climbing: an edge keeps
	// climbing while its min_g is at or below LEst and its estimate is
	// accepted once min_g exceeds it.
	LEst int
	// LPrune is the min_g threshold above which an edge is discarded
	// regardless of how far its ladder climbed.
	LPrune int

	// Seed perturbs BeautyHash's factor-triple selection; see
	// estimation.GetBeautyHashEstimator.
	Seed int
	// Factors is the fixed factor triple LadderBeauty uses; ignored by
	// LadderBeautyHash.
	Factors estimation.BeautyFactors
	// Ladder selects the estimator family. Defaults to LadderBeautyHash.
	Ladder Ladder

	// AdjustedCost adjusts an operator's nominal cost into the cost
	// accumulated as g. Defaults to searchengine.IdentityAdjustedCost.
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

func WithEstimationBounds(lEst, lPrune int) Option {
	return func(o *Options) { o.LEst = lEst; o.LPrune = lPrune }
}

func WithSeed(seed int) Option { return func(o *Options) { o.Seed = seed } }

// WithFactors selects LadderBeauty with the given fixed factor triple.
func WithFactors(f estimation.BeautyFactors) Option {
	return func(o *Options) {
		o.Factors = f
		o.Ladder = LadderBeauty
	}
}

func WithAdjustedCost(f searchengine.AdjustedCoster) Option {
	return func(o *Options) { o.AdjustedCost = f }
}

func WithEvaluator(e evaluation.Evaluator) Option { return func(o *Options) { o.Evaluator = e } }

func WithOpenList(ol openlist.OpenList) Option { return func(o *Options) { o.OpenList = ol } }

func WithPruning(p openlist.PruningMethod) Option { return func(o *Options) { o.Pruning = p } }

func WithStats(s *searchstats.Statistics) Option { return func(o *Options) { o.Stats = s } }

// DefaultOptions returns sensible defaults: no bound, l_est 0 (accept
// an edge's first estimate without climbing further) and l_prune at
// NoBound (never discard on cost alone), BeautyHash with seed 0,
// identity cost adjustment, EstimatedGEvaluator, a Heap open list,
// NoPruning, and a fresh Statistics.
func DefaultOptions() Options {
	return Options{
		ReopenClosed: false,
		Bound:        searchengine.NoBound,
		LEst:         0,
		LPrune:       searchengine.NoBound,
		Seed:         0,
		Ladder:       LadderBeautyHash,
		AdjustedCost: searchengine.IdentityAdjustedCost,
		Evaluator:    evaluation.EstimatedGEvaluator{},
		OpenList:     openlist.NewHeap(),
		Pruning:      openlist.NoPruning{},
		Stats:        searchstats.New(),
	}
}

func (o Options) getEstimator(info *estimation.Info, adjustedCost int) (estimation.Estimator, bool) {
	if o.Ladder == LadderBeauty {
		return estimation.GetBeautyEstimator(info, adjustedCost, o.Factors)
	}
	return estimation.GetBeautyHashEstimator(info, adjustedCost, o.Seed)
}
