package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tenderchat_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tenderchat_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	TranslationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tenderchat_translations_total",
			Help: "Text-to-SQL translation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	TranslationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tenderchat_translation_duration_seconds",
			Help:    "LLM round-trip latency.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tenderchat_queries_total",
			Help: "SQL statements executed by source and outcome.",
		},
		[]string{"source", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		TranslationsTotal,
		TranslationSeconds,
		QueriesTotal,
	)
}
