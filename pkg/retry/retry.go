package retry

import (
	"context"
	"reflect"
	"runtime"
	"time"

	"login-backend/pkg/logger"
)

// RetryConfig holds the configuration for retry behavior
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts before giving up
	MaxAttempts int
	// Delay is the initial delay between attempts
	Delay time.Duration
	// MaxDelay is the maximum delay between attempts
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay is multiplied between attempts
	Multiplier float64
	// RetryableErr is a function that determines if an error is retryable
	RetryableErr func(error) bool
}

// DefaultRetryConfig provides sensible default values
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts: 5,
		Delay:       time.Second,
		MaxDelay:    time.Second * 30,
		Multiplier:  2.0,
		RetryableErr: func(err error) bool {
			return true
		},
	}
}

// WithRetry wraps fn with exponential backoff. The returned function stops
// early when ctx is done and returns the last error seen.
func WithRetry[T any](fn func() (T, error), log *logger.Logger, config *RetryConfig) func(ctx context.Context) (T, error) {
	if config == nil {
		config = DefaultRetryConfig()
	}
	if config.RetryableErr == nil {
		config.RetryableErr = func(error) bool { return true }
	}

	return func(ctx context.Context) (T, error) {
		var zero T
		var lastErr error
		currentDelay := config.Delay
		functionName := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()

		for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
			result, err := fn()
			if err == nil {
				return result, nil
			}

			lastErr = err
			if !config.RetryableErr(err) {
				return zero, err
			}

			if attempt == config.MaxAttempts {
				break
			}

			log.PrintfWarning("Attempt %d of %s failed: %s. Retrying in %.1fs", attempt, functionName, err, currentDelay.Seconds())

			timer := time.NewTimer(currentDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, lastErr
			case <-timer.C:
			}

			currentDelay = time.Duration(float64(currentDelay) * config.Multiplier)
			if currentDelay > config.MaxDelay {
				currentDelay = config.MaxDelay
			}
		}

		log.PrintfError("Reached max retry attempts for func: %s", functionName)
		return zero, lastErr
	}
}
