package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/ports"
)

// ProvisioningService creates accounts end-to-end: identity (with its
// default-role profile), role assignment, client record, welcome email.
// The steps commit independently; there is no rollback on mid-sequence
// failure, and re-invoking with the same email fails at identity
// creation on the store's uniqueness constraint.
type ProvisioningService struct {
	resolver   ports.SessionResolver
	identities ports.IdentityStore
	profiles   ports.ProfileStore
	clients    ports.ClientStore
	notifier   ports.Notifier
	secret     string
	logger     zerolog.Logger
}

func NewProvisioningService(resolver ports.SessionResolver, identities ports.IdentityStore, profiles ports.ProfileStore, clients ports.ClientStore, notifier ports.Notifier, secret string, logger zerolog.Logger) *ProvisioningService {
	return &ProvisioningService{
		resolver:   resolver,
		identities: identities,
		profiles:   profiles,
		clients:    clients,
		notifier:   notifier,
		secret:     secret,
		logger:     logger,
	}
}

func (s *ProvisioningService) CreateAccount(ctx context.Context, authz ports.Authorizer, input ports.CreateAccountInput) (*ports.CreateAccountResult, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" || input.BusinessName == "" {
		return nil, domain.ErrInvalidRequest
	}

	role, bootstrap, err := s.authorize(ctx, authz, input.RoleHint)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIdentityCreation, err)
	}

	now := time.Now().UTC()
	identity, err := s.identities.Create(ctx, &domain.Identity{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrIdentityExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrIdentityCreation, err)
	}

	// The profile starts at the default role "client"; only a promotion
	// needs an explicit write. An identity carrying the wrong role is a
	// serious inconsistency, so a failed write is fatal on both paths.
	if role != domain.RoleClient {
		if err := s.profiles.SetRole(ctx, identity.ID, role); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProfileUpdate, err)
		}
	}

	if _, err := s.clients.Insert(ctx, &domain.ClientRecord{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		BusinessName: input.BusinessName,
		CreatedAt:    now,
	}); err != nil {
		// Admin accounts function without a roster entry; client
		// accounts do not.
		if !bootstrap {
			return nil, fmt.Errorf("%w: %v", domain.ErrClientRecord, err)
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to add admin to client roster")
	}

	result := &ports.CreateAccountResult{
		ID:           identity.ID,
		Email:        identity.Email,
		Role:         role,
		Name:         input.Name,
		BusinessName: input.BusinessName,
	}

	if _, err := s.notifier.SendWelcome(ctx, input.Email, input.Name, input.BusinessName, role); err != nil {
		s.logger.Warn().Err(err).Str("email", input.Email).Msg("welcome email failed")
		result.Warning = "account created but welcome email could not be sent"
	}

	s.logger.Info().
		Str("email", identity.Email).
		Str("role", role).
		Bool("bootstrap", bootstrap).
		Msg("account provisioned")

	return result, nil
}

// authorize resolves the caller's right to provision and the role of
// the new account. bootstrap reports the provisioning-secret path.
func (s *ProvisioningService) authorize(ctx context.Context, authz ports.Authorizer, roleHint string) (role string, bootstrap bool, err error) {
	switch a := authz.(type) {
	case ports.SecretAuthorizer:
		if s.secret == "" || a.Secret != s.secret {
			return "", false, domain.ErrUnauthorized
		}
		return domain.RoleAdmin, true, nil

	case ports.BearerAuthorizer:
		if a.Token == "" {
			return "", false, domain.ErrUnauthorized
		}
		caller, err := s.resolver.Resolve(ctx, a.Token)
		if err != nil {
			return "", false, domain.ErrUnauthorized
		}
		if !caller.IsAdmin() {
			return "", false, domain.ErrForbidden
		}
		role = domain.RoleClient
		if roleHint == domain.RoleAdmin {
			role = domain.RoleAdmin
		}
		return role, false, nil

	default:
		return "", false, domain.ErrUnauthorized
	}
}
