package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for MessageGenerations.
const (
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindflow_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mindflow_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AssessmentsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mindflow_assessments_submitted_total",
			Help: "Total number of assessments scored",
		},
	)

	MessageGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindflow_message_generation_total",
			Help: "Recommendation messages by outcome (generated or fallback)",
		},
		[]string{"outcome"},
	)

	MessageGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mindflow_message_generation_duration_seconds",
			Help:    "Time spent waiting on the text generation service",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mindflow_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)
)
