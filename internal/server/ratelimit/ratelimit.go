// Package ratelimit provides a token bucket rate limiter for the HTTP API.
package ratelimit

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiter configuration.
type Config struct {
	// RequestsPerMinute is the sustained request rate allowed per client.
	RequestsPerMinute int

	// Burst is the maximum number of requests allowed in a burst.
	Burst int

	// CleanupInterval is how often stale client buckets are removed.
	CleanupInterval time.Duration
}

// LoadConfig loads rate limiter configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		RequestsPerMinute: 60,
		Burst:             10,
		CleanupInterval:   5 * time.Minute,
	}

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer, got %q", v)
		}
		cfg.RequestsPerMinute = n
	}

	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer, got %q", v)
		}
		cfg.Burst = n
	}

	return cfg, nil
}

// Info describes the rate limit state returned to callers for response headers.
type Info struct {
	// Limit is the sustained request rate per minute.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetTime is when the bucket will next be full.
	ResetTime time.Time

	// RetryAfter is how long the client should wait before retrying.
	// Only set when the request was denied.
	RetryAfter time.Duration
}

// bucket is a token bucket for a single client.
type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// Limiter is a per-client token bucket rate limiter.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	stop    chan struct{}
}

// NewLimiter creates a rate limiter and starts its background cleanup loop.
func NewLimiter(cfg *Config) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  cfg,
		stop:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the client identified by key may make a request now.
// It always returns rate limit info for response headers.
func (l *Limiter) Allow(key string) (bool, *Info) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(l.config.Burst), lastSeen: now}
		l.buckets[key] = b
	}

	// Refill tokens based on elapsed time since the last request.
	refillRate := float64(l.config.RequestsPerMinute) / 60.0
	elapsed := now.Sub(b.lastSeen).Seconds()
	b.tokens += elapsed * refillRate
	if b.tokens > float64(l.config.Burst) {
		b.tokens = float64(l.config.Burst)
	}
	b.lastSeen = now

	info := &Info{
		Limit:     l.config.RequestsPerMinute,
		ResetTime: now.Add(time.Duration((float64(l.config.Burst)-b.tokens)/refillRate) * time.Second),
	}

	if b.tokens < 1 {
		info.Remaining = 0
		waitSecs := math.Ceil((1 - b.tokens) / refillRate)
		info.RetryAfter = time.Duration(waitSecs) * time.Second
		return false, info
	}

	b.tokens--
	info.Remaining = int(b.tokens)
	return true, info
}

// Stop terminates the background cleanup loop.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

// cleanup removes buckets that have been idle long enough to be full again.
func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.config.CleanupInterval)
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
