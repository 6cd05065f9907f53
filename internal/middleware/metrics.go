package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"infinite-experiment/routeplanner/internal/metrics"

	"github.com/go-chi/chi/v5"
)

// MetricsMiddleware records HTTP metrics for each request. A nil registry
// disables it.
func MetricsMiddleware(metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if metricsReg == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inFlight := metricsReg.HTTPRequestsInFlight.WithLabelValues(NormalizeEndpoint(r.URL.Path))
			inFlight.Inc()
			defer inFlight.Dec()

			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			endpoint := routePattern(r)
			metricsReg.HTTPRequestsTotal.WithLabelValues(
				endpoint,
				r.Method,
				strconv.Itoa(wrapped.statusCode),
			).Inc()
			metricsReg.HTTPRequestDuration.WithLabelValues(
				endpoint,
				r.Method,
			).Observe(time.Since(start).Seconds())
		})
	}
}

// routePattern is the matched chi pattern, which is only known once the
// router has run. Unrouted requests fall back to the normalized path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return NormalizeEndpoint(r.URL.Path)
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.written {
		r.statusCode = code
		r.written = true
		r.ResponseWriter.WriteHeader(code)
	}
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.written {
		r.statusCode = http.StatusOK
		r.written = true
	}
	return r.ResponseWriter.Write(b)
}

// NormalizeEndpoint replaces path segments that look like ids or ICAO
// codes with placeholders to keep label cardinality bounded, e.g.
// /api/v1/aircraft/12/toggle -> /api/v1/aircraft/{id}/toggle.
func NormalizeEndpoint(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		switch {
		case isIDLike(part):
			parts[i] = "{id}"
		case i > 0 && parts[i-1] == "airports" && part != "":
			parts[i] = "{icao}"
		}
	}
	return strings.Join(parts, "/")
}

// isIDLike checks if a string looks like an ID (numeric or UUID)
func isIDLike(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return strings.Contains(s, "-") && len(s) == 36
		}
	}
	return true
}
