package searchconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-weiss/laddersearch/searchconfig"
)

const sampleTOML = `
[beauty]
reopen_closed = true
bound = 100
seed = 7

[synchronic]
epsilon = 1.5
end_of_search_estimations = true

[iterated_sync]
epsilon = 1.1
initial_epsilon = 2.0
shrinkage_factor = 0.8
threshold = 0.05

[anytime_beauty]
max_iter = 5
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o644))
	return path
}

func TestLoad_DecodesAllTables(t *testing.T) {
	cfg, err := searchconfig.Load(writeSample(t))
	require.NoError(t, err)

	assert.True(t, cfg.Beauty.ReopenClosed)
	assert.Equal(t, 100, cfg.Beauty.Bound)
	assert.Equal(t, 7, cfg.Beauty.Seed)
	assert.Equal(t, 1.5, cfg.Synchronic.Epsilon)
	assert.Equal(t, 2.0, cfg.IteratedSync.InitialEpsilon)
	assert.Equal(t, 5, cfg.AnytimeBeauty.MaxIter)
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := searchconfig.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestBeautyOptions_AppliesBoundAndReopen(t *testing.T) {
	cfg, err := searchconfig.Load(writeSample(t))
	require.NoError(t, err)

	opts := cfg.BeautyOptions()
	assert.NotEmpty(t, opts)
}

func TestIteratedSyncOptions_CarriesSynchronicChildOptions(t *testing.T) {
	cfg, err := searchconfig.Load(writeSample(t))
	require.NoError(t, err)

	opts := cfg.IteratedSyncOptions()
	assert.NotEmpty(t, opts)
}
