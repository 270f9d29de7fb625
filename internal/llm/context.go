package llm

import "context"

type purposeKey struct{}

// WithPurpose labels the context with what the call is for, e.g. "card-gen".
// The logging decorator reads it back so log lines say which feature drove
// the request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown" when the
// caller never set one.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}
