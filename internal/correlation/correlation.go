// Package correlation carries the per-request correlation identifier.
//
// The identifier is resolved once at request entry (reused from the inbound
// x-request-id header when present, generated otherwise), stored in the
// request context, and stamped on the response and on every outbound hop.
// This package is free of net/http so services, clients and the event bus
// can read the identifier without importing HTTP code.
package correlation

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Header is the fixed correlation header name. Header lookup is
// case-insensitive per RFC 7230; this is the canonical form used on writes.
const Header = "X-Request-Id"

type ctxKey struct{}

// FromContext returns the correlation identifier resolved for this request,
// or "" when no middleware has run (workers, tests).
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// WithContext injects a correlation identifier into the context.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Resolve returns the identifier to use for a request: the inbound header
// value when it carries anything non-blank, else a fresh 128-bit random UUID.
// It never fails; any inconclusive input falls back to generation.
func Resolve(inbound string) string {
	if id := strings.TrimSpace(inbound); id != "" {
		return id
	}
	return uuid.NewString()
}
