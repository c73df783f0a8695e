package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
)

const (
	DefaultMaxRetryAttempts = 3
	defaultRetryDelay       = 200 * time.Millisecond
)

// Do runs fn and retries it on retryable errors with exponential backoff.
// Non-retryable errors are returned as is, so callers can still match sentinels.
// Once the attempts are exhausted on a retryable error, the result wraps ErrTransient.
func Do(ctx context.Context, operation string, maxRetryAttempts uint, fn func() error) error {
	var lastErr error
	err := retry.Do(
		func() error {
			err := fn()
			if err == nil {
				return nil
			}
			lastErr = err
			if !IsRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(maxRetryAttempts+1),
		retry.Delay(defaultRetryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying lexicon request",
				"operation", operation,
				"attempt", n+1,
				"error", err)
		}),
	)
	if err == nil {
		return nil
	}
	if lastErr == nil {
		// retry.Do stopped before fn ran, e.g. on a cancelled context
		return fmt.Errorf("%s: %w", operation, err)
	}
	if IsRetryableError(lastErr) {
		return fmt.Errorf("%s failed after retries: %w: %w", operation, ErrTransient, lastErr)
	}
	return lastErr
}
