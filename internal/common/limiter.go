package common

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client. Buckets of clients that have
// been quiet for longer than the idle timeout are evicted by the cache.
type RateLimiter struct {
	mu      sync.Mutex
	clients *Cache
	rps     rate.Limit
	burst   int
}

func NewRateLimiter(rps float64, burst int, idle time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: NewCache(idle, 2*idle),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

// Allow reports whether the client identified by ip may make a request now.
func (l *RateLimiter) Allow(ip string) bool {
	key := CacheKeyClient(ip)

	l.mu.Lock()
	v, ok := l.clients.Get(key)
	if !ok {
		v = rate.NewLimiter(l.rps, l.burst)
	}
	l.clients.Set(key, v)
	l.mu.Unlock()

	return v.(*rate.Limiter).Allow()
}
