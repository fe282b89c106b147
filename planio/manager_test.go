package planio_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-weiss/laddersearch/planio"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/searchtask"
)

func TestSave_WritesJSONRecord(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plans")
	m := planio.NewManager(dir)

	plan := searchengine.Plan{searchtask.OperatorID("right"), searchtask.OperatorID("down")}
	rec, err := m.Save(plan, 42, searchengine.Solved)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.RunID)
	assert.Equal(t, 1, rec.Sequence)
	assert.Equal(t, []string{"right", "down"}, rec.Operators)
	assert.Equal(t, 42, rec.Cost)
	assert.Equal(t, "SOLVED", rec.Status)

	data, err := os.ReadFile(filepath.Join(dir, rec.RunID+".json"))
	require.NoError(t, err)
	var decoded planio.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, rec.RunID, decoded.RunID)
}

func TestSave_SequenceIncrementsAcrossCalls(t *testing.T) {
	m := planio.NewManager(t.TempDir())
	plan := searchengine.Plan{}

	first, err := m.Save(plan, 1, searchengine.Solved)
	require.NoError(t, err)
	second, err := m.Save(plan, 2, searchengine.Solved)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Sequence)
	assert.Equal(t, 2, second.Sequence)
	assert.NotEqual(t, first.RunID, second.RunID)
}
