// Package prometheus provides metrics decorators for the troubledoc
// interfaces and the handler that exposes them.
package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SearchesTotal counts executed searches.
	SearchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "troubledoc_searches_total",
		Help: "Total number of searches executed",
	})

	// SearchDuration tracks search latency in seconds.
	SearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "troubledoc_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// PagesFetched counts completed page fetches, regardless of status.
	PagesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "troubledoc_pages_fetched_total",
		Help: "Total number of documentation pages fetched",
	})

	// FetchFailures counts fetches that failed at the transport level.
	FetchFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "troubledoc_fetch_failures_total",
		Help: "Total number of failed page fetches",
	})

	// ParseFailures counts pages that could not be parsed.
	ParseFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "troubledoc_parse_failures_total",
		Help: "Total number of failed page parses",
	})

	// CacheHits counts content cache hits.
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "troubledoc_cache_hits_total",
		Help: "Total number of content cache hits",
	})

	// CacheMisses counts content cache misses.
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "troubledoc_cache_misses_total",
		Help: "Total number of content cache misses",
	})
)

func init() {
	prometheus.MustRegister(
		SearchesTotal,
		SearchDuration,
		PagesFetched,
		FetchFailures,
		ParseFailures,
		CacheHits,
		CacheMisses,
	)
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
