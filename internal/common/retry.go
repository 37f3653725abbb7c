package common

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"
)

type RetryLogger interface {
	Info(msg string, args ...any)
}

// Retry calls fn until it succeeds or maxRetries attempts have been made, sleeping
// with exponential backoff and full jitter between attempts. The last error is returned.
func Retry(ctx context.Context, logger RetryLogger, name string, maxRetries int, baseDelay time.Duration, fn func() error) error {
	var err error

	for attempt := 0; attempt < maxRetries; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		if attempt == maxRetries-1 {
			break
		}

		delay := time.Duration(rand.Int63n(int64(baseDelay) << uint(attempt)))
		logger.Info("retrying", slog.String("op", name), slog.Int("attempt", attempt), slog.Duration("delay", delay), slog.String("error", err.Error()))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}
