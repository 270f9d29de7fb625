package llm

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider is a decorator that records every LLM request.
type LoggingProvider struct {
	inner Provider
	log   *slog.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *slog.Logger) Provider {
	if log == nil {
		log = slog.Default()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	attrs := []any{
		"provider", l.inner.ModelID(),
		"purpose", purpose,
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if resp != nil {
		attrs = append(attrs,
			"model", resp.Model,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
	}

	if err != nil {
		l.log.Warn("llm request failed", append(attrs, "error", err)...)
	} else {
		l.log.Info("llm request", attrs...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
