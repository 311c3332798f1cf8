package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by the cache backends.
var (
	// ErrNotFound is returned when a requested entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork is returned for backend connectivity failures
	// (timeouts, connection errors).
	ErrNetwork = errors.New("network error")

	// ErrCacheMiss is returned when an entry is absent from the cache.
	ErrCacheMiss = errors.New("cache miss")
)

// Retry policy for transient backend failures. The cache is a performance
// layer, so a handful of quick attempts is enough; callers fall through to
// recomputing on persistent failure.
const (
	retryAttempts  = 3
	retryBaseDelay = time.Second
)

// RetryableError marks an error as transient so RetryWithBackoff will try
// the operation again. The redis backend wraps connection failures this
// way; logical errors pass through unwrapped and fail immediately.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is marked retryable anywhere in its chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn, retrying retryable failures with exponential
// backoff until the attempt budget or ctx runs out. The last error is
// returned when all attempts fail.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryBaseDelay
	var lastErr error

	for i := 0; i < retryAttempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < retryAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
