package requestid

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// New mints a fresh correlation ID.
func New() string {
	return uuid.NewString()
}

// WithContext attaches id to ctx for retrieval down the call stack with
// FromContext.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the correlation ID attached to ctx, or "" if none was
// attached.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
