package llm

import "context"

type purposeContextKey struct{}

// WithPurpose tags the context with a short label naming what the
// request is for, e.g. "swot". The logging decorator records it.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeContextKey{}, purpose)
}

// PurposeFrom reads the purpose label back, defaulting to "unknown"
// for untagged contexts.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeContextKey{}).(string); ok {
		return p
	}
	return "unknown"
}
