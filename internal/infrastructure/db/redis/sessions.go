package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portalteam/client-portal/internal/core/domain"
)

// SessionStore holds refresh tokens in Redis.
// Key format: session:refresh:<token> → identity id, expiring with the token.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) SaveRefreshToken(ctx context.Context, token, identityID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(token), identityID, ttl).Err()
}

// IdentityForRefreshToken returns the identity id a refresh token was
// issued to. An unknown or expired token maps to ErrUnauthorized.
func (s *SessionStore) IdentityForRefreshToken(ctx context.Context, token string) (string, error) {
	id, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return "", domain.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("refresh token lookup: %w", err)
	}
	return id, nil
}

func (s *SessionStore) DeleteRefreshToken(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

func (s *SessionStore) key(token string) string {
	return "session:refresh:" + token
}
