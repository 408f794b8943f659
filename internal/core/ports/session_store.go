package ports

import (
	"context"
	"time"
)

// SessionStore holds issued refresh tokens. Access tokens are stateless
// JWTs and never touch the store.
type SessionStore interface {
	SaveRefreshToken(ctx context.Context, token, identityID string, ttl time.Duration) error
	IdentityForRefreshToken(ctx context.Context, token string) (string, error)
	DeleteRefreshToken(ctx context.Context, token string) error
}
