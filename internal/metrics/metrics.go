// Package metrics exposes Prometheus instrumentation for the feed
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedFetchTotal counts upstream feed fetches by result
	// ("success" or "error").
	FeedFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gotvmovies_feed_fetch_total",
		Help: "Total number of upstream feed fetch attempts by result",
	}, []string{"result"})

	// FeedFetchDuration tracks how long fetching and decoding the feed
	// takes.
	FeedFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gotvmovies_feed_fetch_duration_seconds",
		Help:    "Time taken to fetch and decode the movie feed",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	// CacheHitsTotal counts feed resolutions served without an upstream
	// fetch, by layer ("memory" or "database").
	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gotvmovies_cache_hits_total",
		Help: "Total number of feed resolutions served from cache by layer",
	}, []string{"layer"})

	// TableRenders counts table builds by resource state at render time.
	TableRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gotvmovies_table_renders_total",
		Help: "Total number of table renders by feed state",
	}, []string{"state"})
)

// IncFeedFetch records the outcome of one upstream fetch attempt.
func IncFeedFetch(result string) {
	FeedFetchTotal.WithLabelValues(result).Inc()
}

// ObserveFeedFetchDuration records the latency of one upstream fetch.
func ObserveFeedFetchDuration(d time.Duration) {
	FeedFetchDuration.Observe(d.Seconds())
}

// IncCacheHit records a feed resolution served from the given layer.
func IncCacheHit(layer string) {
	CacheHitsTotal.WithLabelValues(layer).Inc()
}

// IncTableRender records one render in the given feed state.
func IncTableRender(state string) {
	TableRenders.WithLabelValues(state).Inc()
}
