package storage

import (
	"context"

	"github.com/worklane/worklane-cli/pkg/api"
)

// CredentialStore is the durable key-value store for the session credentials:
// the access token and a cached snapshot of the authenticated user.
//
// The snapshot is a cache only — the authoritative identity is always
// re-fetched from /users/me/. If the token is absent the session must be
// treated as unauthenticated no matter what snapshot is cached.
type CredentialStore interface {
	// SaveToken stores the access token, leaving the user snapshot untouched.
	SaveToken(ctx context.Context, token string) error

	// Token returns the stored access token.
	// Returns ErrCredentialsNotFound if no token is stored.
	Token(ctx context.Context) (string, error)

	// SaveSession stores the access token and the user snapshot together.
	SaveSession(ctx context.Context, token string, user *api.User) error

	// SaveUser replaces the cached user snapshot, leaving the token untouched.
	SaveUser(ctx context.Context, user *api.User) error

	// User returns the cached user snapshot.
	// Returns ErrCredentialsNotFound if no snapshot is stored.
	User(ctx context.Context) (*api.User, error)

	// Clear removes the access token and the user snapshot together.
	// Clearing an already-empty store is not an error.
	Clear(ctx context.Context) error
}
