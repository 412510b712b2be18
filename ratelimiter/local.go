package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrWaitExceeded is returned when the required wait is longer than maxWait.
	ErrWaitExceeded = errors.New("rate limit wait exceeds max wait")

	// ErrExceedsCapacity is returned when a request can never fit the bucket.
	ErrExceedsCapacity = errors.New("request exceeds limiter capacity")
)

// RateLimiter limits both prompt tokens and request count per minute.
type RateLimiter struct {
	TokensBucket   *TokenBucket
	RequestsBucket *TokenBucket
}

var _ Limiter = (*RateLimiter)(nil)

// New creates an in-memory limiter refilled every minute. A non-positive
// limit disables that dimension.
func New(tokensPerMinute, requestsPerMinute int) *RateLimiter {
	return &RateLimiter{
		TokensBucket:   NewTokenBucket(tokensPerMinute, tokensPerMinute, time.Minute),
		RequestsBucket: NewTokenBucket(requestsPerMinute, requestsPerMinute, time.Minute),
	}
}

// TryConsume consumes numTokens and one request, or nothing.
func (rl *RateLimiter) TryConsume(numTokens int) bool {
	if !rl.TokensBucket.TryConsume(numTokens) {
		return false
	}
	if !rl.RequestsBucket.TryConsume(1) {
		rl.TokensBucket.refund(numTokens)
		return false
	}
	return true
}

// TimeUntilAvailable returns the longer of the token and request waits.
func (rl *RateLimiter) TimeUntilAvailable(tokens int) time.Duration {
	tokenWait := rl.TokensBucket.TimeUntilAvailable(tokens)
	requestWait := rl.RequestsBucket.TimeUntilAvailable(1)
	return max(tokenWait, requestWait)
}

// WaitAndConsume waits until tokens are available (up to maxWait), then consumes them.
// If maxWait is 0, there is no limit on how long to wait.
func (rl *RateLimiter) WaitAndConsume(ctx context.Context, tokens int, maxWait time.Duration) error {
	if c := rl.TokensBucket.Capacity(); c > 0 && tokens > c {
		return fmt.Errorf("%w: %d tokens requested, capacity %d", ErrExceedsCapacity, tokens, c)
	}

	for {
		if rl.TryConsume(tokens) {
			return nil
		}

		waitDuration := rl.TimeUntilAvailable(tokens)
		if waitDuration <= 0 {
			waitDuration = time.Millisecond
		}
		if maxWait > 0 && waitDuration > maxWait {
			return fmt.Errorf("%w: need %v, max %v", ErrWaitExceeded, waitDuration, maxWait)
		}

		timer := time.NewTimer(waitDuration)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if maxWait > 0 {
			maxWait -= waitDuration
			if maxWait <= 0 {
				return fmt.Errorf("%w: still no capacity", ErrWaitExceeded)
			}
		}
	}
}

// TokenBucket is a bucket refilled to capacity once per interval.
type TokenBucket struct {
	mu             sync.Mutex
	capacity       int
	remaining      int
	refillInterval time.Duration
	lastRefill     time.Time
}

// NewTokenBucket creates a new token bucket.
func NewTokenBucket(capacity int, initialTokens int, refillInterval time.Duration) *TokenBucket {
	return &TokenBucket{
		capacity:       capacity,
		remaining:      initialTokens,
		refillInterval: refillInterval,
		lastRefill:     time.Now(),
	}
}

func (tb *TokenBucket) unlimited() bool {
	return tb.capacity <= 0
}

// TryConsume atomically checks and consumes tokens.
func (tb *TokenBucket) TryConsume(tokens int) bool {
	if tb.unlimited() {
		return true
	}
	tb.mu.Lock()
	defer tb.mu.Unlock()
	now := time.Now()
	if now.Sub(tb.lastRefill) >= tb.refillInterval {
		tb.remaining = tb.capacity
		tb.lastRefill = now
	}
	if tokens <= tb.remaining {
		tb.remaining -= tokens
		return true
	}
	return false
}

func (tb *TokenBucket) refund(tokens int) {
	if tb.unlimited() {
		return
	}
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.remaining = min(tb.capacity, tb.remaining+tokens)
}

// TimeUntilAvailable returns how long until tokens would be available.
// It does not modify state. Requests above capacity report a full interval.
func (tb *TokenBucket) TimeUntilAvailable(tokens int) time.Duration {
	if tb.unlimited() {
		return 0
	}
	tb.mu.Lock()
	defer tb.mu.Unlock()

	elapsed := time.Since(tb.lastRefill)
	if elapsed >= tb.refillInterval {
		if tokens <= tb.capacity {
			return 0
		}
		return tb.refillInterval
	}

	if tokens <= tb.remaining {
		return 0
	}
	return tb.refillInterval - elapsed
}

// Capacity returns the bucket size; zero or less means unlimited.
func (tb *TokenBucket) Capacity() int {
	return tb.capacity
}
