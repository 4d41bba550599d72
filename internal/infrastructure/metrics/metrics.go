package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Export metrics
	ExportsCompleted prometheus.Counter
	ExportsFailed    prometheus.Counter
	ExportDuration   prometheus.Histogram
	ExportRows       prometheus.Histogram

	// GraphQL upstream metrics
	GraphQLRequests *prometheus.CounterVec
	GraphQLDuration *prometheus.HistogramVec
	FeedPages       *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	CacheErrors prometheus.Counter

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		ExportsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wsexport_exports_completed_total",
			Help: "Total number of export runs that produced a document",
		}),
		ExportsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wsexport_exports_failed_total",
			Help: "Total number of export runs aborted by an error",
		}),
		ExportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "wsexport_export_duration_seconds",
			Help:    "Duration of export runs",
			Buckets: prometheus.DefBuckets,
		}),
		ExportRows: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "wsexport_export_rows",
			Help:    "Rows emitted per export document",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
		GraphQLRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wsexport_graphql_requests_total",
				Help: "Total number of upstream GraphQL requests",
			},
			[]string{"operation", "status"},
		),
		GraphQLDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wsexport_graphql_request_duration_seconds",
				Help:    "Duration of upstream GraphQL requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		FeedPages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wsexport_feed_pages_total",
				Help: "Total number of pages fetched per source",
			},
			[]string{"source"},
		),
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wsexport_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wsexport_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wsexport_cache_hits_total",
			Help: "Total number of export document cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wsexport_cache_misses_total",
			Help: "Total number of export document cache misses",
		}),
		CacheErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wsexport_cache_errors_total",
			Help: "Total number of export document cache errors",
		}),
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wsexport_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wsexport_db_query_duration_seconds",
				Help:    "Duration of database queries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wsexport_db_errors_total",
				Help: "Total number of database errors",
			},
			[]string{"operation"},
		),
	}
}
