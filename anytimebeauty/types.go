package anytimebeauty

import (
	"errors"

	"github.com/eyal-weiss/laddersearch/beauty"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/searchstats"
)

// ErrNilTask indicates Run was called with a nil searchtask.Task.
var ErrNilTask = errors.New("anytimebeauty: task must not be nil")

// Result is a finished (or failed) AnytimeBeauty run's outcome.
type Result struct {
	Status searchengine.Status
	Plan   searchengine.Plan

	// Cost is the best refined (upper-bound) cost any iteration
	// certified.
	Cost int
	// Optimal reports whether the terminating iteration certified its
	// plan as optimal.
	Optimal bool
	// Iterations is how many child Beauty searches actually ran.
	Iterations int
	// Stats accumulates every iteration's statistics, folded by the
	// original's abs-diff rule (see package doc).
	Stats *searchstats.Statistics
}

// Options configures one AnytimeBeauty run. The zero value is not
// meaningful on its own; build one via DefaultOptions and functional
// options.
type Options struct {
	// MaxIter caps the number of iterations; exceeding it is
	// searchengine.ErrCritical, not a FAILED result.
	MaxIter int

	// EngineOptions are passed to every child beauty.Run call, before
	// this iteration's WithEstimationBounds override.
	EngineOptions []beauty.Option
}

// Option is a functional option for Options.
type Option func(*Options)

func WithMaxIter(n int) Option { return func(o *Options) { o.MaxIter = n } }

func WithEngineOptions(opts ...beauty.Option) Option {
	return func(o *Options) { o.EngineOptions = opts }
}

// DefaultOptions returns max_iter 10, the original's documented default.
func DefaultOptions() Options {
	return Options{MaxIter: 10}
}
