// Package searchmetrics exposes a *searchstats.Statistics as Prometheus
// gauges, the way NikeGunn-tutu's observability package turns internal
// counters into scrape-able metrics.
//
// Overview:
//
// Collector wraps a *searchstats.Statistics and implements
// prometheus.Collector directly (Describe/Collect) rather than using
// promauto package-level vars: Statistics' counters mutate in place as
// the search runs, so values must be read fresh at scrape time instead
// of Set on every increment. cmd/laddersearch's serve subcommand
// registers a Collector on a dedicated prometheus.Registry and mounts it
// at /metrics via go-chi/chi and promhttp.HandlerFor, close to the
// pairing NikeGunn-tutu's api.Server uses for its own /metrics route.
//
// Error handling: Collect never errors; a nil Statistics reports all
// gauges as zero rather than panicking, so a Collector registered
// before a search starts is always scrape-safe.
package searchmetrics
