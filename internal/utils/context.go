// Package utils provides small helpers shared by the server and client:
// typed context keys, JSON response writing, the resty client constructor,
// JWT issuing and validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user's int64 ID.
	UserIDCtxKey = contextKey("userID")

	// RequestMetaCtxKey holds the RequestMeta of the inbound request.
	RequestMetaCtxKey = contextKey("requestMeta")
)

// RequestMeta describes the caller for the activity log.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// GetUserIDFromContext returns the user ID stored under UserIDCtxKey.
// ok is false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithRequestMeta stores meta in ctx.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, RequestMetaCtxKey, meta)
}

// GetRequestMeta returns the RequestMeta stored in ctx, or a zero value.
func GetRequestMeta(ctx context.Context) RequestMeta {
	meta, _ := ctx.Value(RequestMetaCtxKey).(RequestMeta)
	return meta
}
