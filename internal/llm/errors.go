package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError reports a 429 from the backend. RetryAfter is the server's
// suggested wait when it sent one, zero otherwise.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// BadOutputError reports model output that failed local validation: not
// JSON, or JSON that does not satisfy the requested schema. Content carries
// the offending output for logs.
type BadOutputError struct {
	Content json.RawMessage
	Err     error
}

func (e *BadOutputError) Error() string {
	return fmt.Sprintf("unusable model output: %v", e.Err)
}

func (e *BadOutputError) Unwrap() error { return e.Err }

// UnavailableError reports a backend that could not serve the request:
// 5xx, network failure, or anything else not classified more precisely.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return "model backend unavailable"
	}
	return fmt.Sprintf("model backend unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError reports a completion cut off at MaxTokens. The partial
// output is kept so callers can decide whether any of it is salvageable.
type TruncatedError struct {
	Content json.RawMessage
}

func (e *TruncatedError) Error() string {
	return "completion truncated at the token limit"
}
