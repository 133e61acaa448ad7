package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_Allow_PerMinute(t *testing.T) {
	limiter := NewMemoryRateLimiter()

	config := RateLimitConfig{
		RequestsPerMinute: 3,
	}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("test-key", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow("test-key", config)
	require.NoError(t, err)
	assert.False(t, allowed, "request over the limit should be rejected")
}

func TestMemoryRateLimiter_Allow_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryRateLimiter()

	config := RateLimitConfig{
		RequestsPerMinute: 1,
	}

	allowed, err := limiter.Allow("key-a", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("key-a", config)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow("key-b", config)
	require.NoError(t, err)
	assert.True(t, allowed, "a different key has its own window")
}

func TestMemoryRateLimiter_Allow_ZeroLimitDisablesWindow(t *testing.T) {
	limiter := NewMemoryRateLimiter()

	config := RateLimitConfig{
		RequestsPerMinute: 0,
		RequestsPerHour:   0,
	}

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow("test-key", config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestMemoryRateLimiter_GetRemaining(t *testing.T) {
	limiter := NewMemoryRateLimiter()

	config := RateLimitConfig{
		RequestsPerMinute: 10,
	}

	for i := 0; i < 4; i++ {
		_, err := limiter.Allow("test-key", config)
		require.NoError(t, err)
	}

	count, err := limiter.GetRemaining("test-key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter()

	config := RateLimitConfig{
		RequestsPerMinute: 1,
	}

	allowed, err := limiter.Allow("test-key", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("test-key", config)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset("test-key"))

	allowed, err = limiter.Allow("test-key", config)
	require.NoError(t, err)
	assert.True(t, allowed, "reset clears the window")
}
