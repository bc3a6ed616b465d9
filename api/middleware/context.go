package middleware

import (
	"context"

	"github.com/angelmondragon/storegate/pkg/session"
)

type contextKey string

const ctxSession contextKey = "session"

// SessionFromContext returns the authenticated session, or nil outside the
// auth middleware.
func SessionFromContext(ctx context.Context) *session.Session {
	if ctx == nil {
		return nil
	}
	if s, ok := ctx.Value(ctxSession).(*session.Session); ok {
		return s
	}
	return nil
}

// WithSession injects the session into the context.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSession, s)
}
