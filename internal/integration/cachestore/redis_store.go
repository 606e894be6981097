// Package cachestore implements adapter.CacheStore backends.
package cachestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/rbac-backend/config"
	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
)

// RedisStore implements adapter.CacheStore on Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient builds a client from configuration. REDIS_URL wins; the
// password and DB fields override whatever the URL carries when set.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.OperationTimeout
	opts.WriteTimeout = cfg.OperationTimeout

	return redis.NewClient(opts), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) adapter.CacheStore {
	return &RedisStore{client: client}
}

// Get returns the value stored at key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores value at key with ttl.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes keys in one DEL round trip.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// NoopStore is used when caching is disabled. Every read misses.
type NoopStore struct{}

// NewNoopStore creates a store that caches nothing.
func NewNoopStore() adapter.CacheStore {
	return NoopStore{}
}

// Get always misses.
func (NoopStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards the value.
func (NoopStore) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete does nothing.
func (NoopStore) Delete(context.Context, ...string) error { return nil }

// Ping reports the store as disabled.
func (NoopStore) Ping(context.Context) error { return errors.New("cache disabled") }
