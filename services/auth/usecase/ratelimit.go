package usecase

import (
	"sync"
	"time"
)

// OTPRateLimiter keeps a per-phone sliding counter of OTP requests.
// The state is process-wide and intentionally not persisted: the limit
// is advisory, not a security boundary.
type OTPRateLimiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	records     map[string]*rateRecord
}

type rateRecord struct {
	count     int
	resetTime time.Time
}

// NewOTPRateLimiter creates a limiter allowing maxRequests per window
// per phone number.
func NewOTPRateLimiter(maxRequests int, window time.Duration) *OTPRateLimiter {
	if maxRequests <= 0 {
		maxRequests = 3
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &OTPRateLimiter{
		maxRequests: maxRequests,
		window:      window,
		records:     make(map[string]*rateRecord),
	}
}

// Allow reports whether another OTP may be issued for the phone number.
// A fresh or expired window resets the counter to 1; once the cap is
// reached further calls return false without incrementing.
func (l *OTPRateLimiter) Allow(phoneNumber string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	record, ok := l.records[phoneNumber]
	if !ok || now.After(record.resetTime) {
		l.records[phoneNumber] = &rateRecord{
			count:     1,
			resetTime: now.Add(l.window),
		}
		return true
	}

	if record.count >= l.maxRequests {
		return false
	}

	record.count++
	return true
}

// Cleanup drops expired records so the map does not grow unbounded
func (l *OTPRateLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for phoneNumber, record := range l.records {
		if now.After(record.resetTime) {
			delete(l.records, phoneNumber)
		}
	}
}
