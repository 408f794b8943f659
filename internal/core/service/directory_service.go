package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/ports"
)

const (
	fieldUnchanged = "unchanged"
	fieldUpdated   = "updated"
	fieldFailed    = "failed"
)

// DirectoryService implements the admin-facing read/update/delete
// operations on the client roster.
type DirectoryService struct {
	identities ports.IdentityStore
	profiles   ports.ProfileStore
	clients    ports.ClientStore
	logger     zerolog.Logger
}

func NewDirectoryService(identities ports.IdentityStore, profiles ports.ProfileStore, clients ports.ClientStore, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		identities: identities,
		profiles:   profiles,
		clients:    clients,
		logger:     logger,
	}
}

// UpdateAccount applies the provided subset of fields. Each sub-update
// is independently best-effort: a failure in one is reported per-field
// and does not roll back the others.
func (s *DirectoryService) UpdateAccount(ctx context.Context, caller *domain.Caller, input ports.UpdateAccountInput) (*ports.UpdateAccountResult, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if input.Email == "" {
		return nil, domain.ErrInvalidRequest
	}

	profile, err := s.profiles.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	fields := map[string]string{
		"name":          fieldUnchanged,
		"business_name": fieldUnchanged,
		"role":          fieldUnchanged,
		"password":      fieldUnchanged,
	}

	if input.NewPassword != "" {
		fields["password"] = fieldFailed
		if hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost); err != nil {
			s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to hash new password")
		} else if err := s.identities.UpdatePassword(ctx, profile.IdentityID, string(hash)); err != nil {
			s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to update password")
		} else {
			fields["password"] = fieldUpdated
		}
	}

	if input.Name != "" || input.BusinessName != "" {
		status := fieldUpdated
		if err := s.clients.Update(ctx, input.Email, ports.ClientPatch{
			Name:         input.Name,
			BusinessName: input.BusinessName,
		}); err != nil {
			s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to update client record")
			status = fieldFailed
		}
		if input.Name != "" {
			fields["name"] = status
		}
		if input.BusinessName != "" {
			fields["business_name"] = status
		}
	}

	if domain.ValidRole(input.Role) {
		fields["role"] = fieldUpdated
		if err := s.profiles.SetRole(ctx, profile.IdentityID, input.Role); err != nil {
			s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to update role")
			fields["role"] = fieldFailed
		}
	}

	return &ports.UpdateAccountResult{Fields: fields}, nil
}

// DeleteAccount removes the client record, the profile, and finally the
// identity. The first two deletions are best-effort; only a failure to
// delete the identity, the authoritative record, fails the request.
func (s *DirectoryService) DeleteAccount(ctx context.Context, caller *domain.Caller, email string) error {
	if caller == nil {
		return domain.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	if email == "" {
		return domain.ErrInvalidRequest
	}

	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrNotFound
	}

	if err := s.clients.DeleteByEmail(ctx, email); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to delete client record")
	}
	if err := s.profiles.Delete(ctx, profile.IdentityID); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to delete profile")
	}
	if err := s.identities.Delete(ctx, profile.IdentityID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeletionFailed, err)
	}

	s.logger.Info().Str("email", email).Msg("account deleted")
	return nil
}

// ListAccounts returns the roster newest-first with each record's role
// joined from the profile store, defaulting to "client" when the join
// misses.
func (s *DirectoryService) ListAccounts(ctx context.Context, caller *domain.Caller) ([]domain.ClientRecord, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Role = domain.RoleClient
		if profile, err := s.profiles.FindByEmail(ctx, records[i].Email); err == nil && domain.ValidRole(profile.Role) {
			records[i].Role = profile.Role
		}
	}
	return records, nil
}
