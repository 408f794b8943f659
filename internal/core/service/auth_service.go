package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/ports"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// AuthService implements login and bearer-token resolution against the
// identity store.
type AuthService struct {
	identities ports.IdentityStore
	profiles   ports.ProfileStore
	sessions   ports.SessionStore
	jwtSecret  string
	tokenTTL   time.Duration
	logger     zerolog.Logger
}

func NewAuthService(identities ports.IdentityStore, profiles ports.ProfileStore, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		identities: identities,
		profiles:   profiles,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Caller, *ports.Session, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	caller := &domain.Caller{
		IdentityID: identity.ID,
		Email:      identity.Email,
		Role:       s.roleFor(ctx, identity.ID),
	}

	session, err := s.issueSession(ctx, caller)
	if err != nil {
		return nil, nil, err
	}
	return caller, session, nil
}

// Resolve validates the bearer token, confirms the identity still
// exists, and looks up the role. A failed role lookup degrades to
// "client" instead of failing the resolution.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Caller, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrUnauthorized
	}

	identity, err := s.identities.FindByID(ctx, sub)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return &domain.Caller{
		IdentityID: identity.ID,
		Email:      identity.Email,
		Role:       s.roleFor(ctx, identity.ID),
	}, nil
}

// Refresh exchanges a stored refresh token for a fresh session,
// rotating the refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.Caller, *ports.Session, error) {
	if refreshToken == "" {
		return nil, nil, domain.ErrUnauthorized
	}

	identityID, err := s.sessions.IdentityForRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, nil, domain.ErrUnauthorized
	}

	identity, err := s.identities.FindByID(ctx, identityID)
	if err != nil {
		return nil, nil, domain.ErrUnauthorized
	}

	if err := s.sessions.DeleteRefreshToken(ctx, refreshToken); err != nil {
		s.logger.Warn().Err(err).Msg("failed to revoke rotated refresh token")
	}

	caller := &domain.Caller{
		IdentityID: identity.ID,
		Email:      identity.Email,
		Role:       s.roleFor(ctx, identity.ID),
	}

	session, err := s.issueSession(ctx, caller)
	if err != nil {
		return nil, nil, err
	}
	return caller, session, nil
}

func (s *AuthService) roleFor(ctx context.Context, identityID string) string {
	role, err := s.profiles.Role(ctx, identityID)
	if err != nil || !domain.ValidRole(role) {
		return domain.RoleClient
	}
	return role
}

func (s *AuthService) issueSession(ctx context.Context, caller *domain.Caller) (*ports.Session, error) {
	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":   caller.IdentityID,
		"email": caller.Email,
		"role":  caller.Role,
		"exp":   expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	session := &ports.Session{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
	}

	// A session store outage costs the refresh token, not the login.
	refresh := uuid.NewString()
	if err := s.sessions.SaveRefreshToken(ctx, refresh, caller.IdentityID, refreshTokenTTL); err != nil {
		s.logger.Warn().Err(err).Str("email", caller.Email).Msg("failed to persist refresh token")
	} else {
		session.RefreshToken = refresh
	}

	return session, nil
}
