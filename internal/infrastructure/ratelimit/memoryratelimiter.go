package ratelimit

import (
	"sync"
	"time"
)

// MemoryRateLimiter is an in-process sliding-window limiter used when
// redis is not configured. Counts are per process, so limits are only
// exact for single-instance deployments.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
}

func NewMemoryRateLimiter() RateLimiter {
	return &MemoryRateLimiter{
		history: make(map[string][]time.Time),
	}
}

func (l *MemoryRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	events := l.prune(key, now)

	windows := []struct {
		duration time.Duration
		limit    int
	}{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	}

	for _, window := range windows {
		if window.limit <= 0 {
			continue
		}

		windowStart := now.Add(-window.duration)
		count := 0
		for _, ts := range events {
			if ts.After(windowStart) {
				count++
			}
		}

		if count >= window.limit {
			return false, nil
		}
	}

	l.history[key] = append(events, now)
	return true, nil
}

func (l *MemoryRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	windowStart := now.Add(-window)
	var count int64
	for _, ts := range l.prune(key, now) {
		if ts.After(windowStart) {
			count++
		}
	}

	return count, nil
}

func (l *MemoryRateLimiter) Reset(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.history, key)
	return nil
}

// prune drops events older than the largest tracked window. Caller must
// hold the mutex.
func (l *MemoryRateLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-24 * time.Hour)
	events := l.history[key]

	kept := events[:0]
	for _, ts := range events {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	l.history[key] = kept
	return kept
}
