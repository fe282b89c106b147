package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/eyal-weiss/laddersearch/searchmetrics"
	"github.com/eyal-weiss/laddersearch/searchstats"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve /metrics and /healthz over a fresh search Statistics",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

// newMetricsHandler wires stats' Collector onto a chi router, the
// pairing demonstrated end-to-end in serve_test.go against the
// Statistics of an actual search.
func newMetricsHandler(stats *searchstats.Statistics) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(searchmetrics.NewCollector("laddersearch", stats))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

func runServe(cmd *cobra.Command, args []string) error {
	// A standalone `serve` invocation has no prior `run` process to
	// attach to, so it serves a fresh Statistics (all zero); the
	// in-process pairing of a running search's own Statistics is
	// demonstrated in serve_test.go.
	handler := newMetricsHandler(searchstats.New())
	return http.ListenAndServe(serveAddr, handler)
}
