package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore tracks issued token ids so tokens can be revoked before their
// signature expires. Deactivating an account revokes everything it holds.
type TokenStore interface {
	Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	IsValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func tokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}

func (s *redisTokenStore) Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) IsValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, tokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("access_token:%s:*", userID.String())
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return s.client.Del(ctx, keys...).Err()
	}
	return nil
}
