package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roadworks_http_request_duration_seconds",
		Help:    "HTTP request latency by method and status class.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})

	panicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roadworks_http_panics_total",
		Help: "Handler panics recovered by the HTTP stack.",
	})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roadworks_http_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter.",
	})
)
