package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// RateLimiter is a per-client token bucket. Buckets live in a bounded
// expirable LRU, so idle clients are forgotten without a sweeper goroutine.
type RateLimiter struct {
	buckets *expirable.LRU[string, *bucket]
	mu      sync.Mutex
	now     func() time.Time
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter tracks at most maxClients buckets, each dropped after idle
// without traffic.
func NewRateLimiter(maxClients int, idle time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: expirable.NewLRU[string, *bucket](maxClients, nil, idle),
		now:     time.Now,
	}
}

// Limit allows perMinute requests per client IP and answers 429 beyond it.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	capacity := float64(perMinute)
	refill := capacity / 60.0
	retryAfter := strconv.Itoa(int(60/capacity) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r), capacity, refill) {
				rateLimitedTotal.Inc()
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string, capacity, refill float64) bool {
	now := rl.now()

	rl.mu.Lock()
	b, ok := rl.buckets.Get(key)
	if !ok {
		b = &bucket{tokens: capacity, lastRefill: now}
	}
	// Re-adding refreshes the idle expiry.
	rl.buckets.Add(key, b)
	rl.mu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * refill
	if b.tokens > capacity {
		b.tokens = capacity
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
