package wordimage

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError is returned when a rate limit is hit.
type RateLimitError struct {
	RetryAfter time.Duration
	LimitType  string
	Model      string
	Err        error // Underlying error from the provider
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s: %s limit, retry after %v",
		e.Model, e.LimitType, e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// IsRateLimitError checks if an error is a RateLimitError.
func IsRateLimitError(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

var (
	// ErrMissingCredential is returned when no API key was supplied.
	// It is always reported before any generator is created.
	ErrMissingCredential = errors.New("credential missing")

	// ErrNoImageData is returned when the response has no candidate, or its
	// first candidate has no part carrying inline image bytes.
	ErrNoImageData = errors.New("no image data found")

	// ErrImageDecode is returned when inline image bytes cannot be decoded.
	ErrImageDecode = errors.New("failed to decode image data")

	// ErrStorageNotConfigured is returned when storage operations are attempted
	// without a configured storage backend.
	ErrStorageNotConfigured = errors.New("storage not configured")
)
