package graph

import (
	"context"

	"library-backend/internal/domains/user"
)

type contextKey struct{}

var currentUserKey contextKey

// WithCurrentUser stores the resolved identity for one request. The
// authorization gate calls this once, before any resolver runs.
func WithCurrentUser(ctx context.Context, profile *user.Profile) context.Context {
	return context.WithValue(ctx, currentUserKey, profile)
}

// CurrentUserFrom returns the request identity, or nil for an
// unauthenticated request. Resolvers that require identity decide for
// themselves what nil means.
func CurrentUserFrom(ctx context.Context) *user.Profile {
	profile, _ := ctx.Value(currentUserKey).(*user.Profile)
	return profile
}
