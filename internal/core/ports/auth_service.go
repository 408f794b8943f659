package ports

import (
	"context"

	"github.com/portalteam/client-portal/internal/core/domain"
)

// Session is the credential pair handed to a client after login.
// ExpiresAt is the unix expiry of the access token.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresAt    int64  `json:"expires_at"`
}

// SessionResolver turns a bearer token into the caller behind it.
// Implementations default the role to "client" when the profile lookup
// fails rather than failing the whole resolution.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Caller, error)
}

type AuthService interface {
	SessionResolver
	Login(ctx context.Context, email, password string) (*domain.Caller, *Session, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.Caller, *Session, error)
}
