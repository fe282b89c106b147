package searchmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eyal-weiss/laddersearch/searchstats"
)

// Collector adapts a *searchstats.Statistics into a prometheus.Collector.
// It is safe to register before the wrapped Statistics has seen any
// activity, and safe to keep registered across multiple search runs
// that reuse or replace the Stats field.
type Collector struct {
	namespace string
	stats     *searchstats.Statistics

	descs map[string]*prometheus.Desc
}

// NewCollector returns a Collector reporting stats's counters under
// namespace (e.g. "laddersearch"). stats may be nil; Collect then
// reports every gauge as zero.
func NewCollector(namespace string, stats *searchstats.Statistics) *Collector {
	c := &Collector{namespace: namespace, stats: stats, descs: make(map[string]*prometheus.Desc)}
	for _, name := range counterNames {
		c.descs[name] = prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "search", name),
			"laddersearch "+name+" counter",
			nil, nil,
		)
	}
	return c
}

// SetStats replaces the wrapped Statistics, so one registered Collector
// can report a newly started search.
func (c *Collector) SetStats(stats *searchstats.Statistics) { c.stats = stats }

var counterNames = []string{
	"edges", "expanded_states", "evaluated_states", "pruned_states",
	"estimated_edges", "evaluations", "estimations",
	"l1_estimations", "l2_estimations", "l3_estimations",
	"generated_states", "reopened_states", "dead_end_states", "generated_ops",
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs {
		ch <- d
	}
}

// Collect implements prometheus.Collector, reading every counter fresh
// from the wrapped Statistics.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	values := c.snapshot()
	for _, name := range counterNames {
		ch <- prometheus.MustNewConstMetric(c.descs[name], prometheus.GaugeValue, float64(values[name]))
	}
}

func (c *Collector) snapshot() map[string]int {
	if c.stats == nil {
		return map[string]int{}
	}
	s := c.stats
	return map[string]int{
		"edges":             s.Edges,
		"expanded_states":   s.ExpandedStates,
		"evaluated_states":  s.EvaluatedStates,
		"pruned_states":     s.PrunedStates,
		"estimated_edges":   s.EstimatedEdges,
		"evaluations":       s.Evaluations,
		"estimations":       s.Estimations,
		"l1_estimations":    s.L1Estimations,
		"l2_estimations":    s.L2Estimations,
		"l3_estimations":    s.L3Estimations,
		"generated_states":  s.GeneratedStates,
		"reopened_states":   s.ReopenedStates,
		"dead_end_states":   s.DeadEndStates,
		"generated_ops":     s.GeneratedOps,
	}
}
