// internal/metrics/metrics.go

// Package metrics registers the Prometheus collectors shared by the CLI
// and the API server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "linkharvester"

var (
	// ExtractionsTotal counts extraction runs by outcome (ok, invalid_input, error).
	ExtractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extractions_total",
		Help:      "Total number of extraction runs.",
	}, []string{"outcome"})

	// URLsFoundTotal counts unique URLs discovered across all runs.
	URLsFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "urls_found_total",
		Help:      "Total number of unique URLs discovered.",
	})

	// EnrichFetchesTotal counts enrichment fetches by outcome (ok, http_error, error).
	EnrichFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "enrich",
		Name:      "fetches_total",
		Help:      "Total number of enrichment fetches.",
	}, []string{"outcome"})

	// EnrichDuration observes per-URL enrichment fetch latency.
	EnrichDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "enrich",
		Name:      "fetch_duration_seconds",
		Help:      "Enrichment fetch latency per URL.",
		Buckets:   prometheus.DefBuckets,
	})

	// ExportsTotal counts export writes by format.
	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of result exports.",
	}, []string{"format"})
)

// Handler exposes the default registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
