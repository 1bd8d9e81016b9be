// Package ratelimit provides a keyed rate limiter using the token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"

	"bookshelf/config"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurst             = 10
	cleanupInterval          = 10 * time.Minute
)

// KeyedRateLimiter manages per-key rate limiting.
// Each unique key (typically a client IP) gets its own independent bucket.
type KeyedRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a keyed rate limiter allowing rps requests per second with the given burst.
func New(rps float64, burst int) *KeyedRateLimiter {
	krl := &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		done:     make(chan struct{}),
	}

	go krl.cleanup()

	return krl
}

// Params defines the parameters required for the auth rate limiter
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewAuthLimiter builds the limiter guarding the auth endpoints from configuration.
func NewAuthLimiter(params Params) *KeyedRateLimiter {
	rps, burst := float64(defaultRequestsPerSecond), defaultBurst
	if params.Config.Auth != nil && params.Config.Auth.RateLimit != nil {
		if params.Config.Auth.RateLimit.RequestsPerSecond > 0 {
			rps = params.Config.Auth.RateLimit.RequestsPerSecond
		}
		if params.Config.Auth.RateLimit.Burst > 0 {
			burst = params.Config.Auth.RateLimit.Burst
		}
	}

	krl := New(rps, burst)
	params.Append(fx.StopHook(krl.Stop))

	return krl
}

// Allow reports whether a request for key may proceed now. It never blocks.
func (krl *KeyedRateLimiter) Allow(key string) bool {
	return krl.getLimiter(key).Allow()
}

// getLimiter returns the limiter for a key, creating one if needed.
func (krl *KeyedRateLimiter) getLimiter(key string) *rate.Limiter {
	krl.mu.RLock()
	limiter, exists := krl.limiters[key]
	krl.mu.RUnlock()

	if exists {
		return limiter
	}

	krl.mu.Lock()
	defer krl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = krl.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(krl.limit, krl.burst)
	krl.limiters[key] = limiter

	return limiter
}

// Stop shuts down the cleanup goroutine.
func (krl *KeyedRateLimiter) Stop() {
	krl.stopOnce.Do(func() {
		close(krl.done)
	})
}

// cleanup periodically drops buckets that have refilled completely.
func (krl *KeyedRateLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-krl.done:
			return
		case <-ticker.C:
			krl.evictIdle()
		}
	}
}

func (krl *KeyedRateLimiter) evictIdle() {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	for key, limiter := range krl.limiters {
		if limiter.Tokens() >= float64(krl.burst) {
			delete(krl.limiters, key)
		}
	}
}

// size returns the number of tracked keys.
func (krl *KeyedRateLimiter) size() int {
	krl.mu.RLock()
	defer krl.mu.RUnlock()

	return len(krl.limiters)
}
