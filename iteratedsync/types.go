package iteratedsync

import (
	"errors"
	"math"

	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/searchstats"
	"github.com/eyal-weiss/laddersearch/synchronic"
)

// ErrNilTask indicates Run was called with a nil searchtask.Task.
var ErrNilTask = errors.New("iteratedsync: task must not be nil")

// Result is a finished (or failed) IteratedSync run's outcome.
type Result struct {
	Status searchengine.Status
	Plan   searchengine.Plan

	// BestUncertaintyBound is the lowest uncertainty ratio any iteration
	// certified; +Inf if no iteration ever solved the task.
	BestUncertaintyBound float64
	// Iterations is how many child searches actually ran.
	Iterations int
	// Stats accumulates every iteration's (fresh, per-iteration)
	// statistics by plain addition.
	Stats *searchstats.Statistics
}

// Options configures one IteratedSync run. The zero value is not
// meaningful on its own; build one via DefaultOptions and functional
// options.
type Options struct {
	// Epsilon is the sub-optimality bound the overall run must clear to
	// report SOLVED.
	Epsilon float64
	// InitialEpsilon seeds target_epsilon for the first iteration.
	InitialEpsilon float64
	// ShrinkageFactor scales how aggressively target_epsilon shrinks
	// toward 1 each iteration. Must be in [0, 1]; values outside that
	// range fall back to 1 at Run time, matching the original's
	// constructor-time clamp.
	ShrinkageFactor float64
	// Threshold is the minimum fractional improvement update_target_epsilon
	// requires to keep tightening; below it the controller jumps straight
	// to target_epsilon = 1 for one final iteration. Expressed as a
	// fraction (0.1 = 10%), not a percentage.
	Threshold float64

	// EngineOptions are passed to every child synchronic.Run call,
	// before this iteration's WithEpsilon override.
	EngineOptions []synchronic.Option
}

// Option is a functional option for Options.
type Option func(*Options)

func WithEpsilon(epsilon float64) Option { return func(o *Options) { o.Epsilon = epsilon } }

func WithInitialEpsilon(epsilon float64) Option {
	return func(o *Options) { o.InitialEpsilon = epsilon }
}

func WithShrinkageFactor(f float64) Option { return func(o *Options) { o.ShrinkageFactor = f } }

func WithThreshold(t float64) Option { return func(o *Options) { o.Threshold = t } }

func WithEngineOptions(opts ...synchronic.Option) Option {
	return func(o *Options) { o.EngineOptions = opts }
}

// DefaultOptions returns epsilon 1, initial_epsilon 1, shrinkage factor
// 1, and threshold 0.1 (10%) — the original's documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:         1,
		InitialEpsilon:  1,
		ShrinkageFactor: 1,
		Threshold:       0.1,
	}
}

func (o Options) normalized() Options {
	if o.ShrinkageFactor < 0 || o.ShrinkageFactor > 1 {
		o.ShrinkageFactor = 1
	}
	if o.Threshold < 0 {
		o.Threshold = 0.1
	}
	return o
}

var infinity = math.Inf(1)
