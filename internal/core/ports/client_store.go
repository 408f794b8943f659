package ports

import (
	"context"

	"github.com/portalteam/client-portal/internal/core/domain"
)

// ClientPatch carries the mutable ClientRecord fields for an update.
// Empty fields are left unchanged.
type ClientPatch struct {
	Name         string
	BusinessName string
}

// ClientStore persists business-facing client records. List returns
// records ordered by creation time, newest first.
type ClientStore interface {
	Insert(ctx context.Context, record *domain.ClientRecord) (*domain.ClientRecord, error)
	FindByEmail(ctx context.Context, email string) (*domain.ClientRecord, error)
	Update(ctx context.Context, email string, patch ClientPatch) error
	DeleteByEmail(ctx context.Context, email string) error
	List(ctx context.Context) ([]domain.ClientRecord, error)
}
