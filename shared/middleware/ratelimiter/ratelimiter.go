package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyRateLimiter keeps one token bucket per key (client IP, user id).
// Buckets idle for longer than expiration are dropped by Cleanup.
type KeyRateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*entry
	rate       rate.Limit
	burst      int
	expiration time.Duration
	now        func() time.Time
}

// New creates a limiter allowing perSecond requests per key with the given burst.
func New(perSecond float64, burst int, expiration time.Duration) *KeyRateLimiter {
	return &KeyRateLimiter{
		limiters:   make(map[string]*entry),
		rate:       rate.Limit(perSecond),
		burst:      burst,
		expiration: expiration,
		now:        time.Now,
	}
}

func (k *KeyRateLimiter) get(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.rate, k.burst)}
		k.limiters[key] = e
	}
	e.lastSeen = k.now()
	return e.limiter
}

// Allow reports whether a request for key may proceed now.
func (k *KeyRateLimiter) Allow(key string) bool {
	return k.get(key).AllowN(k.now(), 1)
}

// Cleanup drops buckets that have been idle longer than the expiration time.
func (k *KeyRateLimiter) Cleanup() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	removed := 0
	cutoff := k.now().Add(-k.expiration)
	for key, e := range k.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(k.limiters, key)
			removed++
		}
	}
	return removed
}

func (k *KeyRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

// StartCleanup runs Cleanup every interval until stop is closed.
func (k *KeyRateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				k.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}
