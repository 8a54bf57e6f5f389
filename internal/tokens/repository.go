// Package tokens persists the session's bearer token between runs. The
// client keeps exactly one durable value: presence of a token means
// "possibly authenticated", absence means anonymous.
package tokens

import "context"

// Repository stores the raw bearer token.
type Repository interface {
	// Get returns the stored token, or "" when none is stored.
	Get(ctx context.Context) (string, error)

	// Set stores the token, replacing any previous one.
	Set(ctx context.Context, token string) error

	// Delete removes the stored token. Deleting an absent token is not an
	// error.
	Delete(ctx context.Context) error
}
