package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPRateLimiter_AllowsUpToCap(t *testing.T) {
	limiter := NewOTPRateLimiter(3, 15*time.Minute)

	assert.True(t, limiter.Allow("+919876543210"))
	assert.True(t, limiter.Allow("+919876543210"))
	assert.True(t, limiter.Allow("+919876543210"))
	assert.False(t, limiter.Allow("+919876543210"))
	assert.False(t, limiter.Allow("+919876543210"))
}

func TestOTPRateLimiter_PerPhoneIsolation(t *testing.T) {
	limiter := NewOTPRateLimiter(1, 15*time.Minute)

	assert.True(t, limiter.Allow("+919876543210"))
	assert.False(t, limiter.Allow("+919876543210"))
	assert.True(t, limiter.Allow("+919876543211"))
}

func TestOTPRateLimiter_WindowExpiryResets(t *testing.T) {
	limiter := NewOTPRateLimiter(2, 15*time.Minute)

	assert.True(t, limiter.Allow("+919876543210"))
	assert.True(t, limiter.Allow("+919876543210"))
	assert.False(t, limiter.Allow("+919876543210"))

	// Force the window to lapse
	limiter.mu.Lock()
	limiter.records["+919876543210"].resetTime = time.Now().Add(-time.Second)
	limiter.mu.Unlock()

	// Fresh window: counter restarts at 1, not at the denied tally
	assert.True(t, limiter.Allow("+919876543210"))
	assert.True(t, limiter.Allow("+919876543210"))
	assert.False(t, limiter.Allow("+919876543210"))
}

func TestOTPRateLimiter_DeniedCallsDoNotExtend(t *testing.T) {
	limiter := NewOTPRateLimiter(1, 15*time.Minute)

	assert.True(t, limiter.Allow("+919876543210"))

	limiter.mu.Lock()
	before := limiter.records["+919876543210"].count
	limiter.mu.Unlock()

	assert.False(t, limiter.Allow("+919876543210"))
	assert.False(t, limiter.Allow("+919876543210"))

	limiter.mu.Lock()
	after := limiter.records["+919876543210"].count
	limiter.mu.Unlock()

	assert.Equal(t, before, after)
}

func TestOTPRateLimiter_Cleanup(t *testing.T) {
	limiter := NewOTPRateLimiter(3, 15*time.Minute)

	limiter.Allow("+919876543210")
	limiter.Allow("+919876543211")

	limiter.mu.Lock()
	limiter.records["+919876543210"].resetTime = time.Now().Add(-time.Second)
	limiter.mu.Unlock()

	limiter.Cleanup()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.records, "+919876543210")
	assert.Contains(t, limiter.records, "+919876543211")
}
