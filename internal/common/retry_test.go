package common

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	errDown := errors.New("down")

	testCases := []struct {
		name      string
		failures  int
		wantCalls int
		wantErr   error
	}{
		{name: "first attempt", failures: 0, wantCalls: 1},
		{name: "recovers", failures: 2, wantCalls: 3},
		{name: "gives up", failures: 10, wantCalls: 4, wantErr: errDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), logger, "test", 4, time.Millisecond, func() error {
				calls++
				if calls <= tc.failures {
					return errDown
				}
				return nil
			})

			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, logger, "test", 5, time.Hour, func() error {
		return errors.New("down")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
