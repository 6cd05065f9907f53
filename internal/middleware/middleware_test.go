package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"infinite-experiment/routeplanner/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizeEndpoint(t *testing.T) {
	cases := map[string]string{
		"/api/v1/aircraft/12/toggle":              "/api/v1/aircraft/{id}/toggle",
		"/api/v1/airports/EHAM":                   "/api/v1/airports/{icao}",
		"/api/v1/routes":                          "/api/v1/routes",
		"/x/123e4567-e89b-12d3-a456-426614174000": "/x/{id}",
		"/api/v1/history":                         "/api/v1/history",
	}
	for in, want := range cases {
		if got := NormalizeEndpoint(in); got != want {
			t.Errorf("NormalizeEndpoint(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != "abc-123" {
		t.Errorf("Expected request ID abc-123, got %q", seen)
	}
	if rr.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("Expected header echoed, got %q", rr.Header().Get(RequestIDHeader))
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if len(seen) != 36 {
		t.Errorf("Expected a generated UUID, got %q", seen)
	}
	if rr.Header().Get(RequestIDHeader) != seen {
		t.Errorf("Expected generated ID on the response, got %q", rr.Header().Get(RequestIDHeader))
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Use(Logging)
	r.Get("/api/v1/aircraft/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/aircraft/7", nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d", rr.Code)
		}
	}

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/api/v1/aircraft/{id}", http.MethodGet, "404"))
	if got != 2 {
		t.Errorf("Expected 2 requests counted under the route pattern, got %v", got)
	}
	if n := testutil.CollectAndCount(m.HTTPRequestDuration); n != 1 {
		t.Errorf("Expected 1 duration series, got %d", n)
	}
}

func TestMetricsMiddleware_NilRegistry(t *testing.T) {
	called := false
	h := MetricsMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Error("Expected handler to run without metrics")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, "127.0.0.1")
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/routes", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("Request %d: expected 200 within burst, got %d", i, code)
		}
	}
	if code := do("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 over the burst, got %d", code)
	}
	if code := do("10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("Expected other clients unaffected, got %d", code)
	}
	for i := 0; i < 5; i++ {
		if code := do("127.0.0.1:4000"); code != http.StatusOK {
			t.Fatalf("Expected whitelisted address never limited, got %d", code)
		}
	}
}
