package middleware

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"infinite-experiment/routeplanner/internal/common"

	"golang.org/x/time/rate"
)

var errTooManyRequests = errors.New("too many requests")

// RateLimiter keeps a token bucket per client IP.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	allow    map[string]bool
}

// NewRateLimiter allows rps requests per second per client with bursts up
// to burst. Addresses in whitelist are never limited.
func NewRateLimiter(rps float64, burst int, whitelist ...string) *RateLimiter {
	rl := &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
		allow:    make(map[string]bool, len(whitelist)),
	}
	for _, ip := range whitelist {
		rl.allow[ip] = true
	}
	return rl
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(rl.rps, rl.burst)
	rl.limiters[ip] = limiter
	return limiter
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if rl.allow[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(ip).Allow() {
			common.RespondError(w, time.Now(), errTooManyRequests, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
