package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the FAQ server
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	LoadErrors      prometheus.Counter
	Entries         prometheus.Gauge
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
}

// New creates the metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "faq_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "faq_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		LoadErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "faq_dataset_load_errors_total",
			Help: "Total failed dataset loads",
		}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "faq_dataset_entries",
			Help: "Number of FAQ entries in the last served dataset",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "faq_cache_hits_total",
			Help: "Dataset reads served from Redis",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "faq_cache_misses_total",
			Help: "Dataset reads that fell through to the source",
		}),
	}
}
