package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/cache"
)

// Metrics holds all Prometheus collectors for the dashboard backend.
var Metrics = struct {
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	ProviderRequests *prometheus.CounterVec
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics() {
	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	Metrics.ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_provider_requests_total",
			Help: "Outbound YouTube Data API requests, by resource and status.",
		},
		[]string{"resource", "status"},
	)

	Metrics.CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_cache_hits_total",
			Help: "Total provider-response cache hits.",
		},
	)

	Metrics.CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_cache_misses_total",
			Help: "Total provider-response cache misses.",
		},
	)

	prometheus.MustRegister(
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.ProviderRequests,
		Metrics.CacheHits,
		Metrics.CacheMisses,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	const commentsPrefix = "/api/videos/"
	if len(path) > len(commentsPrefix) && path[:len(commentsPrefix)] == commentsPrefix &&
		path != "/api/videos/top" && path != "/api/videos/export" {
		return "/api/videos/:videoId/comments"
	}
	return path
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}

// instrumentedStore wraps a cache.Store and counts hits and misses.
type instrumentedStore struct {
	inner cache.Store
}

// InstrumentStore decorates a cache store with the hit/miss counters.
// InitMetrics must have been called first.
func InstrumentStore(inner cache.Store) cache.Store {
	return &instrumentedStore{inner: inner}
}

func (s *instrumentedStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, ok := s.inner.Get(ctx, key)
	if ok {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
	}
	return val, ok
}

func (s *instrumentedStore) Set(ctx context.Context, key string, value []byte) {
	s.inner.Set(ctx, key, value)
}
