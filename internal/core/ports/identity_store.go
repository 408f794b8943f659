package ports

import (
	"context"

	"github.com/portalteam/client-portal/internal/core/domain"
)

// IdentityStore persists authentication identities. Creating an identity
// also creates its profile with the default role, mirroring the store-side
// trigger the portal relies on.
type IdentityStore interface {
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// ProfileStore reads and mutates per-identity role records.
type ProfileStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Role(ctx context.Context, identityID string) (string, error)
	SetRole(ctx context.Context, identityID, role string) error
	Delete(ctx context.Context, identityID string) error
}
