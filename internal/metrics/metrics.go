package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the route planner. The
// helper methods accept a nil receiver so components can run without
// metrics in tests.
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBErrorsTotal   *prometheus.CounterVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Route generation
	RouteBatchDuration   *prometheus.HistogramVec
	RoutesGeneratedTotal prometheus.Counter
	RouteAttemptFailures *prometheus.CounterVec
	FleetNotFlown        prometheus.Gauge
}

// NewMetricsRegistry registers every metric with reg, or with the default
// registerer when reg is nil.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeplanner_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "routeplanner_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "routeplanner_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeplanner_db_queries_total",
				Help: "Total store operations by operation name",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "routeplanner_db_query_duration_seconds",
				Help:    "Store operation time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),
		DBErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeplanner_db_errors_total",
				Help: "Failed store operations by operation name and error kind",
			},
			[]string{"query_type", "kind"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeplanner_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeplanner_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Route generation
		RouteBatchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "routeplanner_route_batch_duration_seconds",
				Help:    "Time to generate one batch of routes",
				Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"mode"},
		),
		RoutesGeneratedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "routeplanner_routes_generated_total",
				Help: "Total routes returned to callers",
			},
		),
		RouteAttemptFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeplanner_route_attempt_failures_total",
				Help: "Route attempts that produced no route, by reason",
			},
			[]string{"reason"},
		),
		FleetNotFlown: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "routeplanner_fleet_not_flown",
				Help: "Aircraft in the fleet not yet flown",
			},
		),
	}
}

// ObserveQuery records one store operation.
func (m *MetricsRegistry) ObserveQuery(op string, start time.Time) {
	if m == nil {
		return
	}
	m.DBQueriesTotal.WithLabelValues(op).Inc()
	m.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// QueryFailed counts a failed store operation.
func (m *MetricsRegistry) QueryFailed(op, kind string) {
	if m == nil {
		return
	}
	m.DBErrorsTotal.WithLabelValues(op, kind).Inc()
}

// CacheLookup counts a hit or a miss for a key pattern.
func (m *MetricsRegistry) CacheLookup(pattern string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHitsTotal.WithLabelValues(pattern).Inc()
	} else {
		m.CacheMissesTotal.WithLabelValues(pattern).Inc()
	}
}

// RouteBatch records a finished batch and its failed attempts by reason.
func (m *MetricsRegistry) RouteBatch(mode string, start time.Time, produced int, failures map[string]int) {
	if m == nil {
		return
	}
	m.RouteBatchDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	m.RoutesGeneratedTotal.Add(float64(produced))
	for reason, n := range failures {
		m.RouteAttemptFailures.WithLabelValues(reason).Add(float64(n))
	}
}

// SetNotFlown updates the not-flown gauge.
func (m *MetricsRegistry) SetNotFlown(n int) {
	if m == nil {
		return
	}
	m.FleetNotFlown.Set(float64(n))
}
