package searchconfig

import (
	"github.com/BurntSushi/toml"

	"github.com/eyal-weiss/laddersearch/anytimebeauty"
	"github.com/eyal-weiss/laddersearch/beauty"
	"github.com/eyal-weiss/laddersearch/iteratedsync"
	"github.com/eyal-weiss/laddersearch/synchronic"
)

// BeautyConfig is the [beauty] table.
type BeautyConfig struct {
	ReopenClosed bool `toml:"reopen_closed"`
	Bound        int  `toml:"bound"`
	LEst         int  `toml:"l_est"`
	LPrune       int  `toml:"l_prune"`
	Seed         int  `toml:"seed"`
	FactorFirst  int  `toml:"factor_first"`
	FactorSecond int  `toml:"factor_second"`
	FactorThird  int  `toml:"factor_third"`
}

// SynchronicConfig is the [synchronic] table.
type SynchronicConfig struct {
	ReopenClosed           bool    `toml:"reopen_closed"`
	Bound                  int     `toml:"bound"`
	Epsilon                float64 `toml:"epsilon"`
	EndOfSearchEstimations bool    `toml:"end_of_search_estimations"`
}

// IteratedSyncConfig is the [iterated_sync] table.
type IteratedSyncConfig struct {
	Epsilon         float64 `toml:"epsilon"`
	InitialEpsilon  float64 `toml:"initial_epsilon"`
	ShrinkageFactor float64 `toml:"shrinkage_factor"`
	Threshold       float64 `toml:"threshold"`
}

// AnytimeBeautyConfig is the [anytime_beauty] table.
type AnytimeBeautyConfig struct {
	MaxIter int `toml:"max_iter"`
}

// Config is the full TOML document's root table.
type Config struct {
	Beauty        BeautyConfig        `toml:"beauty"`
	Synchronic    SynchronicConfig    `toml:"synchronic"`
	IteratedSync  IteratedSyncConfig  `toml:"iterated_sync"`
	AnytimeBeauty AnytimeBeautyConfig `toml:"anytime_beauty"`
}

// Load decodes path into a Config.
func Load(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// BeautyOptions translates the [beauty] table into beauty.Option
// values. Factors are only applied if any factor field is non-zero,
// since the zero value would otherwise force beauty.LadderBeauty with
// all-zero factors instead of leaving the default BeautyHash ladder in
// place.
func (c Config) BeautyOptions() []beauty.Option {
	var opts []beauty.Option
	if c.Beauty.ReopenClosed {
		opts = append(opts, beauty.WithReopenClosed())
	}
	if c.Beauty.Bound > 0 {
		opts = append(opts, beauty.WithBound(c.Beauty.Bound))
	}
	if c.Beauty.LEst > 0 || c.Beauty.LPrune > 0 {
		opts = append(opts, beauty.WithEstimationBounds(c.Beauty.LEst, c.Beauty.LPrune))
	}
	if c.Beauty.FactorFirst != 0 || c.Beauty.FactorSecond != 0 || c.Beauty.FactorThird != 0 {
		opts = append(opts, beauty.WithFactors(estimationFactors(c.Beauty)))
	}
	opts = append(opts, beauty.WithSeed(c.Beauty.Seed))
	return opts
}

// SynchronicOptions translates the [synchronic] table into
// synchronic.Option values.
func (c Config) SynchronicOptions() []synchronic.Option {
	var opts []synchronic.Option
	if c.Synchronic.ReopenClosed {
		opts = append(opts, synchronic.WithReopenClosed())
	}
	if c.Synchronic.Bound > 0 {
		opts = append(opts, synchronic.WithBound(c.Synchronic.Bound))
	}
	if c.Synchronic.Epsilon > 0 {
		opts = append(opts, synchronic.WithEpsilon(c.Synchronic.Epsilon))
	}
	opts = append(opts, synchronic.WithEndOfSearchEstimations(c.Synchronic.EndOfSearchEstimations))
	return opts
}

// IteratedSyncOptions translates the [iterated_sync] table (plus the
// [synchronic] table, passed through as the child engine's options)
// into iteratedsync.Option values.
func (c Config) IteratedSyncOptions() []iteratedsync.Option {
	opts := []iteratedsync.Option{
		iteratedsync.WithEngineOptions(c.SynchronicOptions()...),
	}
	if c.IteratedSync.Epsilon > 0 {
		opts = append(opts, iteratedsync.WithEpsilon(c.IteratedSync.Epsilon))
	}
	if c.IteratedSync.InitialEpsilon > 0 {
		opts = append(opts, iteratedsync.WithInitialEpsilon(c.IteratedSync.InitialEpsilon))
	}
	if c.IteratedSync.ShrinkageFactor > 0 {
		opts = append(opts, iteratedsync.WithShrinkageFactor(c.IteratedSync.ShrinkageFactor))
	}
	if c.IteratedSync.Threshold > 0 {
		opts = append(opts, iteratedsync.WithThreshold(c.IteratedSync.Threshold))
	}
	return opts
}

// AnytimeBeautyOptions translates the [anytime_beauty] table (plus the
// [beauty] table, passed through as the child engine's options) into
// anytimebeauty.Option values.
func (c Config) AnytimeBeautyOptions() []anytimebeauty.Option {
	opts := []anytimebeauty.Option{
		anytimebeauty.WithEngineOptions(c.BeautyOptions()...),
	}
	if c.AnytimeBeauty.MaxIter > 0 {
		opts = append(opts, anytimebeauty.WithMaxIter(c.AnytimeBeauty.MaxIter))
	}
	return opts
}
