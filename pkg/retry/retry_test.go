package retry

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"login-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) *RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.MaxAttempts = attempts
	cfg.Delay = time.Millisecond
	cfg.MaxDelay = 2 * time.Millisecond
	return cfg
}

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	log := logger.NewLogger(&bytes.Buffer{}, "Test", logger.DEBUG, "System")
	calls := 0

	fn := WithRetry(func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("not yet")
		}
		return "connected", nil
	}, log, fastConfig(5))

	got, err := fn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "connected", got)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_GivesUp(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&buf, "Test", logger.DEBUG, "System")
	calls := 0

	fn := WithRetry(func() (int, error) {
		calls++
		return 0, errors.New("down")
	}, log, fastConfig(3))

	_, err := fn(context.Background())
	assert.EqualError(t, err, "down")
	assert.Equal(t, 3, calls)
	assert.Contains(t, buf.String(), "Reached max retry attempts")
}

func TestWithRetry_NonRetryable(t *testing.T) {
	log := logger.NewLogger(&bytes.Buffer{}, "Test", logger.DEBUG, "System")
	fatal := errors.New("bad dsn")
	cfg := fastConfig(5)
	cfg.RetryableErr = func(err error) bool { return !errors.Is(err, fatal) }
	calls := 0

	fn := WithRetry(func() (int, error) {
		calls++
		return 0, fatal
	}, log, cfg)

	_, err := fn(context.Background())
	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_StopsOnCancel(t *testing.T) {
	log := logger.NewLogger(&bytes.Buffer{}, "Test", logger.DEBUG, "System")
	cfg := fastConfig(10)
	cfg.Delay = time.Hour
	cfg.MaxDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	fn := WithRetry(func() (int, error) {
		calls++
		cancel()
		return 0, errors.New("down")
	}, log, cfg)

	_, err := fn(ctx)
	assert.EqualError(t, err, "down")
	assert.Equal(t, 1, calls)
}
