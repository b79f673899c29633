package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "habitat_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "habitat_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method", "route"})
	LocationLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "habitat_location_lookups_total",
		Help: "Total location lookups by operation",
	}, []string{"operation"})
	LocationEmptyResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "habitat_location_empty_results_total",
		Help: "Total location lookups that matched nothing",
	}, []string{"operation"})
	RatingSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "habitat_rating_submissions_total",
		Help: "Total stored neighborhood ratings by city",
	}, []string{"city"})
	RatingEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "habitat_rating_events_total",
		Help: "Rating events by direction and outcome",
	}, []string{"direction", "outcome"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "habitat_summary_cache_hits_total",
		Help: "Total rating summary cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "habitat_summary_cache_misses_total",
		Help: "Total rating summary cache misses",
	})
	CacheErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "habitat_summary_cache_errors_total",
		Help: "Total rating summary cache failures",
	})
	WarmUpDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "habitat_summary_warm_up_duration_ms",
		Help:    "Rating summary warm-up duration in milliseconds",
		Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 30000},
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(LocationLookupsTotal)
	prometheus.MustRegister(LocationEmptyResultsTotal)
	prometheus.MustRegister(RatingSubmissionsTotal)
	prometheus.MustRegister(RatingEventsTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(CacheErrorsTotal)
	prometheus.MustRegister(WarmUpDurationMs)
}

// ObserveLookup counts a location lookup and, when it matched nothing, an empty result.
func ObserveLookup(operation string, results int) {
	LocationLookupsTotal.WithLabelValues(operation).Inc()
	if results == 0 {
		LocationEmptyResultsTotal.WithLabelValues(operation).Inc()
	}
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
