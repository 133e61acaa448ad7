// Package ratelimit provides sliding-window rate limiting for the webhook
// ingestion path, keyed per owning resource.
package ratelimit

import "time"

// RateLimitConfig sets the per-window request budgets. A zero budget
// disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
	BurstSize         int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
