// Package correlation carries the opaque correlation token of one logical
// request through context.Context so it can be logged and forwarded to every
// backend call.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header used to exchange the correlation token, both on
// inbound requests and on outbound backend calls.
const Header = "X-Correlation-Id"

type key struct{}

// WithID returns a copy of ctx carrying id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key{}, id)
}

// ID returns the correlation token stored in ctx, or an empty string.
func ID(ctx context.Context) string {
	id, _ := ctx.Value(key{}).(string)

	return id
}

// NewID generates a fresh token.
func NewID() string {
	return uuid.NewString()
}
