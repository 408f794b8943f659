package ports

import (
	"context"

	"github.com/portalteam/client-portal/internal/core/domain"
)

// UpdateAccountInput carries the subset of account fields to change.
// Empty fields are left untouched.
type UpdateAccountInput struct {
	Email        string
	Name         string
	BusinessName string
	Role         string
	NewPassword  string
}

// UpdateAccountResult reports each requested field as "updated",
// "failed", or "unchanged". Sub-updates are independently best-effort;
// nothing rolls back.
type UpdateAccountResult struct {
	Fields map[string]string
}

// DirectoryService exposes read/update/delete operations on the client
// roster. Mutations require an admin caller; listing only requires an
// authenticated one.
type DirectoryService interface {
	UpdateAccount(ctx context.Context, caller *domain.Caller, input UpdateAccountInput) (*UpdateAccountResult, error)
	DeleteAccount(ctx context.Context, caller *domain.Caller, email string) error
	ListAccounts(ctx context.Context, caller *domain.Caller) ([]domain.ClientRecord, error)
}
