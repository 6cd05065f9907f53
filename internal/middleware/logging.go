package middleware

import (
	"net/http"
	"time"

	"infinite-experiment/routeplanner/internal/logging"
)

// Logging writes one structured line per request once it completes.
// Health checks and scrapes log at debug level.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lw, r)

		logger := logging.WithRequest(GetRequestID(r.Context()), routePattern(r))
		fields := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", lw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", clientIP(r),
		}
		switch {
		case lw.statusCode >= http.StatusInternalServerError:
			logger.Errorw("HTTP request completed", fields...)
		case r.URL.Path == "/health" || r.URL.Path == "/metrics":
			logger.Debugw("HTTP request completed", fields...)
		default:
			logger.Infow("HTTP request completed", fields...)
		}
	})
}
