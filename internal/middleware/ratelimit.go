// internal/middleware/ratelimit.go
package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// IPRateLimiter hands out one token-bucket limiter per client IP.
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

// NewIPRateLimiter creates a new IP-based rate limiter.
func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{rate: r, burst: burst}
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	if existing, ok := l.limiters.Load(ip); ok {
		return existing.(*rate.Limiter)
	}
	created, _ := l.limiters.LoadOrStore(ip, rate.NewLimiter(l.rate, l.burst))
	return created.(*rate.Limiter)
}

// RateLimit rejects requests exceeding the per-IP limit with 429.
func RateLimit(l *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				// chi's RealIP middleware strips the port.
				ip = r.RemoteAddr
			}
			if !l.limiter(ip).Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
