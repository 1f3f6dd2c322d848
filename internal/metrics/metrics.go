package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "singlish_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "singlish_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}, []string{"route", "method"})

	RequestBodyTooLarge = promauto.NewCounter(prometheus.CounterOpts{
		Name: "singlish_http_body_too_large_total",
		Help: "Requests rejected because the body exceeded the size limit",
	})
)

// Conversion metrics.
var (
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "singlish_conversions_total",
		Help: "Conversions by direction",
	}, []string{"direction"})

	ConvertedRunes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "singlish_converted_runes_total",
		Help: "Input runes converted, by direction",
	}, []string{"direction"})

	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "singlish_batch_items",
		Help:    "Number of items per batch request",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
	})
)
