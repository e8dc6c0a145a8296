// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// UserContext identifies the actor behind a request. It feeds the audit
// stamps (created_by / updated_by) on documents.
type UserContext struct {
	UserID string
	Name   string
	Email  string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context, or nil.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns the actor id from context or empty string.
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return ""
}

// GetActor returns the actor id, falling back to "system" for jobs and
// internal callers that run without a request.
func GetActor(ctx context.Context) string {
	if id := GetUserID(ctx); id != "" {
		return id
	}
	return "system"
}
