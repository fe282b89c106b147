package searchmetrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-weiss/laddersearch/searchmetrics"
	"github.com/eyal-weiss/laddersearch/searchstats"
)

func collect(t *testing.T, c prometheus.Collector) map[string]float64 {
	t.Helper()
	ch := make(chan prometheus.Metric, 64)
	c.Collect(ch)
	close(ch)

	out := make(map[string]float64)
	for m := range ch {
		var pb dto.Metric
		require.NoError(t, m.Write(&pb))
		out[m.Desc().String()] = pb.GetGauge().GetValue()
	}
	return out
}

func TestCollector_NilStatisticsReportsZero(t *testing.T) {
	c := searchmetrics.NewCollector("laddersearch", nil)
	values := collect(t, c)
	assert.NotEmpty(t, values)
	for _, v := range values {
		assert.Zero(t, v)
	}
}

func TestCollector_ReportsLiveCounterValues(t *testing.T) {
	s := searchstats.New()
	s.IncEdges(3)
	s.IncExpanded(2)

	c := searchmetrics.NewCollector("laddersearch", s)
	values := collect(t, c)

	var found bool
	for desc, v := range values {
		if v == 3 {
			found = true
			_ = desc
		}
	}
	assert.True(t, found, "expected an edges gauge reporting 3")

	s.IncEdges(1)
	values = collect(t, c)
	var foundUpdated bool
	for _, v := range values {
		if v == 4 {
			foundUpdated = true
		}
	}
	assert.True(t, foundUpdated, "collector should read fresh counter values, not a stale snapshot")
}
