package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier decorates a Provider with exponential backoff. Rate limits and
// backend outages retry up to MaxAttempts; a schema miss gets exactly one
// second chance; truncation and cancelled contexts fail straight through.
type retrier struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with the retry policy above.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, config: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	badOutputRetried := false

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &badOutputRetried) {
			return nil, err
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retrier) ModelID() string {
	return r.inner.ModelID()
}

func retryable(err error, badOutputRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Truncation means MaxTokens is set too low. Retrying the same request
	// would truncate again.
	var truncated *TruncatedError
	if errors.As(err, &truncated) {
		return false
	}

	// One re-roll for output that failed validation. Models are mostly
	// consistent, so a second miss means the prompt or schema is at fault.
	var bad *BadOutputError
	if errors.As(err, &bad) {
		if *badOutputRetried {
			return false
		}
		*badOutputRetried = true
		return true
	}

	// Everything else, including raw network errors, is treated as transient.
	return true
}

// wait computes the backoff before the next attempt. A server-supplied
// Retry-After wins over the computed curve.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.config.MaxWait))

	// ±20% jitter keeps concurrent clients from retrying in lockstep.
	wait += wait * 0.2 * (2*rand.Float64() - 1)

	return time.Duration(math.Max(wait, 0))
}
