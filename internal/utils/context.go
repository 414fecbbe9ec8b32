// Package utils provides general-purpose helper utilities used across
// the gateway: type-safe context keys, JWT generation and validation and
// UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UsernameCtxKey is the key of the authenticated operator name.
	UsernameCtxKey = contextKey("username")

	// SessionIDCtxKey is the key of the session identifier ("jti").
	SessionIDCtxKey = contextKey("sessionID")
)

// WithSession returns a copy of ctx carrying the authenticated operator and
// session identifier.
func WithSession(ctx context.Context, username, sessionID string) context.Context {
	ctx = context.WithValue(ctx, UsernameCtxKey, username)
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetUsernameFromContext retrieves the operator name stored by WithSession.
//
// Returns ok == false when the value is missing, empty or of an unexpected
// type.
//
// Example usage:
//
//	username, ok := utils.GetUsernameFromContext(ctx)
//	if !ok {
//	    // unauthenticated call
//	}
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}

// GetSessionIDFromContext retrieves the session identifier stored by
// WithSession.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
