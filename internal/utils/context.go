// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, session token generation and
// validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-spellbook/internal/session"
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

// SessionCtxKey is the key used to store the request's *session.Session in
// the context.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, s)
}

// GetSessionFromContext retrieves the session stored by [WithSession].
//
// ok is false when the value is missing, nil or of an unexpected type.
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(*session.Session)
	return s, ok && s != nil
}
