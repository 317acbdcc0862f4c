package llm

import "context"

// PurposeUnknown labels calls made without WithPurpose.
const PurposeUnknown = "unknown"

type purposeKey struct{}

// WithPurpose tags ctx with the feature making the call ("assistant",
// "explain", ...). The label is stored on the logged event and in retry
// logs.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return PurposeUnknown
}
