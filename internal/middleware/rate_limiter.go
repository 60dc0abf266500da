package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/render"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxVisitors = 1024
	visitorTTL  = 3 * time.Minute
)

// RateLimiter keeps one token bucket per client host. Idle clients expire
// from the cache after visitorTTL.
type RateLimiter struct {
	mu       sync.Mutex
	visitors *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		visitors: expirable.NewLRU[string, *rate.Limiter](maxVisitors, nil, visitorTTL),
		rate:     r,
		burst:    b,
	}
}

func (rl *RateLimiter) limiter(host string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.visitors.Get(host); ok {
		// Re-adding refreshes the TTL.
		rl.visitors.Add(host, l)
		return l
	}

	l := rate.NewLimiter(rl.rate, rl.burst)
	rl.visitors.Add(host, l)
	return l
}

func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.limiter(clientIP(r)).Allow() {
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, errorBody(ErrorCodeRateLimitExceeded, ErrorMessageRateLimitExceeded))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port so one device is one visitor across connections.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
