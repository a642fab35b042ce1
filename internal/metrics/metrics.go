package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for LLM requests.
const (
	OutcomeSuccess     = "success"
	OutcomeConfigError = "config_error"
	OutcomeHTTPError   = "http_error"
	OutcomeFetchError  = "fetch_error"
)

var (
	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of chat completion requests by outcome",
		},
		[]string{"outcome"},
	)

	LLMRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duration of chat completion requests in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
	)

	// AnalysesServed counts results handed to callers; degraded marks empty fallbacks.
	AnalysesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_analyses_served_total",
			Help: "Total number of analyses returned to callers",
		},
		[]string{"kind", "degraded"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_cache_lookups_total",
			Help: "Result cache lookups by kind and result",
		},
		[]string{"kind", "result"},
	)
)
