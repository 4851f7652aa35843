package ai

import (
	"context"
	"time"

	"github.com/kozaktomas/content-planner/internal/constants"
)

// retryBackoff is a variable so tests can shorten the wait.
var retryBackoff = constants.RetryBackoff

// GenerateWithRetry calls the provider with each attempt bounded by
// constants.GenerateTimeout. Transient failures (timeouts, rate limits) are
// retried up to constants.MaxGenerateRetries times with linear backoff,
// resending the same prompt. Auth and service failures surface immediately.
func GenerateWithRetry(ctx context.Context, p Provider, prompt string, opts GenerateOptions) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= constants.MaxGenerateRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", &Error{Kind: KindTransient, Message: "generation cancelled", Err: ctx.Err()}
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, constants.GenerateTimeout)
		text, err := p.Generate(attemptCtx, prompt, opts)
		cancel()

		if err == nil {
			return text, nil
		}
		if !IsTransient(err) {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}
