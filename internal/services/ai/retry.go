// File: internal/services/ai/retry.go
package ai

import (
	"context"
	"time"
)

// RetryService wraps provider calls with a deadline and fixed-delay
// retries. Provider failures are reported as ordinary errors to the
// caller; they are never fatal.
type RetryService struct {
	config *Config
	logger Logger
}

func NewRetryService(config *Config, logger Logger) *RetryService {
	return &RetryService{config: config, logger: logger}
}

func (r *RetryService) RetryWithTimeout(parent context.Context, call func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, r.config.Timeout)
	defer cancel()

	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			r.logger.Debug("retrying provider call", "attempt", attempt, "max_retries", r.config.MaxRetries)
			select {
			case <-ctx.Done():
				return NewTimeoutError("retry", ctx.Err())
			case <-time.After(r.config.RetryDelay):
			}
		}

		err := call(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("provider call succeeded after retry", "attempts", attempt+1)
			}
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return NewTimeoutError("call", ctx.Err())
		}
		if attempt < r.config.MaxRetries {
			r.logger.Warn("provider call failed, retrying", "attempt", attempt+1, "error", err)
		}
	}

	r.logger.Error("provider call failed after all retries", "attempts", r.config.MaxRetries+1, "error", lastErr)
	return NewProviderError("retry", "call failed after all retries", lastErr)
}
