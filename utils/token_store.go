package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore keeps the hashes of live tokens so they can be revoked before they expire.
type TokenStore interface {
	Save(ctx context.Context, customerID, tokenHash string, ttl time.Duration) error
	Exists(ctx context.Context, customerID, tokenHash string) (bool, error)
	Revoke(ctx context.Context, customerID, tokenHash string) error
}

// RedisTokenStore implements TokenStore on the auth cache database.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func tokenKey(customerID, tokenHash string) string {
	return AuthCachePrefix + customerID + ":" + tokenHash
}

func (s *RedisTokenStore) Save(ctx context.Context, customerID, tokenHash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, tokenKey(customerID, tokenHash), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Exists(ctx context.Context, customerID, tokenHash string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(customerID, tokenHash)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to look up token: %w", err)
	}
	return n > 0, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, customerID, tokenHash string) error {
	return s.client.Del(ctx, tokenKey(customerID, tokenHash)).Err()
}
