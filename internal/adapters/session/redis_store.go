package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	redisclient "github.com/zatekoja/hivclinic/internal/infrastructure/clients/redis"
)

// RedisStore keeps the session in Redis so several operator processes
// share one login. Keys are "<namespace>:token" and "<namespace>:userInfo".
type RedisStore struct {
	client    *redisclient.Client
	namespace string
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redisclient.Client, namespace string) providers.SessionStore {
	return &RedisStore{
		client:    client,
		namespace: namespace,
	}
}

func (s *RedisStore) key(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + ":" + name
}

func (s *RedisStore) get(ctx context.Context, name string) (string, error) {
	val, err := s.client.Client().Get(ctx, s.key(name)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s from session: %w", name, err)
	}
	return val, nil
}

func (s *RedisStore) set(ctx context.Context, name, value string) error {
	if err := s.client.Client().Set(ctx, s.key(name), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s to session: %w", name, err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when nobody is logged in
func (s *RedisStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, providers.SessionKeyToken)
}

// SetToken stores the bearer token
func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, providers.SessionKeyToken, token)
}

// UserInfo returns the cached profile, or nil when none is stored
func (s *RedisStore) UserInfo(ctx context.Context) (*entities.UserInfo, error) {
	raw, err := s.get(ctx, providers.SessionKeyUserInfo)
	if err != nil {
		return nil, err
	}
	return decodeUserInfo(raw)
}

// SetUserInfo caches the profile. A nil info deletes the key.
func (s *RedisStore) SetUserInfo(ctx context.Context, info *entities.UserInfo) error {
	encoded, err := encodeUserInfo(info)
	if err != nil {
		return err
	}
	if encoded == "" {
		return s.client.Client().Del(ctx, s.key(providers.SessionKeyUserInfo)).Err()
	}
	return s.set(ctx, providers.SessionKeyUserInfo, encoded)
}

// Clear deletes both session keys
func (s *RedisStore) Clear(ctx context.Context) error {
	err := s.client.Client().Del(ctx,
		s.key(providers.SessionKeyToken),
		s.key(providers.SessionKeyUserInfo),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
