// Package tokenstore keeps the allowlist of live refresh-token IDs in redis.
// A refresh token is only honored while its JTI is still present; entries
// expire with the token itself.
package tokenstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("refresh token not found")

type RefreshStore interface {
	Put(ctx context.Context, jti, userID string, ttl time.Duration) error
	Get(ctx context.Context, jti string) (string, error)
	Delete(ctx context.Context, jti string) error
}

type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func key(jti string) string { return "refresh:" + jti }

func (s *RedisStore) Put(ctx context.Context, jti, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key(jti), userID, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, jti string) (string, error) {
	v, err := s.rdb.Get(ctx, key(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return v, err
}

func (s *RedisStore) Delete(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, key(jti)).Err()
}
