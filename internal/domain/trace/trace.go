// Package trace provides per-operation trace identifiers.
package trace

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

var traceIDKey = contextKey{}

// ID represents a unique trace identifier.
type ID string

// NewID generates a new unique trace ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// WithTraceID returns a new context with the given trace ID.
func WithTraceID(ctx context.Context, id ID) context.Context {
	return context.WithValue(ctx, traceIDKey, id)
}

// FromContext retrieves the trace ID from the context.
// If no trace ID is present, it returns an empty string.
func FromContext(ctx context.Context) ID {
	id, ok := ctx.Value(traceIDKey).(ID)
	if !ok {
		return ""
	}
	return id
}

// Ensure returns the context's trace ID, minting and attaching a new one when
// the context has none. Top-level actions call this once so every log line of
// the operation shares an ID.
func Ensure(ctx context.Context) (context.Context, ID) {
	if id := FromContext(ctx); id != "" {
		return ctx, id
	}

	id := NewID()

	return WithTraceID(ctx, id), id
}

// String returns the string representation of the trace ID.
func (id ID) String() string {
	return string(id)
}
