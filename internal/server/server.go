// Package server exposes the conversion core over HTTP.
//
// Every request is one pure conversion; the server keeps no state between
// requests beyond its metrics.
package server

import (
	"net/http"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sinhala/preview"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// tracer writes to trace with key 'sinhala'
func tracer() tracing.Trace {
	return tracing.Select("sinhala")
}

// Config holds the request limits of a Server.
type Config struct {
	MaxBodyBytes int64 // limit for request bodies
	BatchLimit   int   // maximum number of items per batch request
	BatchWorkers int   // concurrent conversions per batch request
}

// DefaultConfig is used for zero fields of a Config.
var DefaultConfig = Config{
	MaxBodyBytes: 1 << 20,
	BatchLimit:   500,
	BatchWorkers: 8,
}

type Server struct {
	conv preview.Converter
	conf Config
}

func New(conv preview.Converter, conf Config) *Server {
	if conf.MaxBodyBytes <= 0 {
		conf.MaxBodyBytes = DefaultConfig.MaxBodyBytes
	}
	if conf.BatchLimit <= 0 {
		conf.BatchLimit = DefaultConfig.BatchLimit
	}
	if conf.BatchWorkers <= 0 {
		conf.BatchWorkers = DefaultConfig.BatchWorkers
	}
	return &Server{conv: conv, conf: conf}
}

// Handler returns the routes of the service, including /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	api := func(h http.HandlerFunc) http.Handler {
		return Chain(h,
			PrometheusMetrics(),
			RequestTracer(),
			BodyLimit(s.conf.MaxBodyBytes),
		)
	}
	mux.Handle("POST /api/v1/singlish", api(s.handleSinglish))
	mux.Handle("POST /api/v1/legacy/encode", api(s.handleEncode))
	mux.Handle("POST /api/v1/legacy/decode", api(s.handleDecode))
	mux.Handle("POST /api/v1/preview", api(s.handlePreview))
	mux.Handle("POST /api/v1/batch", api(s.handleBatch))

	mux.Handle("GET /health", Chain(http.HandlerFunc(s.handleHealth), PrometheusMetrics()))
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}
