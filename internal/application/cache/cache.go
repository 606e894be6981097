package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
)

// TTLPolicy holds expirations per volatility class.
type TTLPolicy struct {
	Aggregate time.Duration
	List      time.Duration
}

// DefaultTTLPolicy returns 15 minutes for aggregates and 30 for listings.
func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		Aggregate: 15 * time.Minute,
		List:      30 * time.Minute,
	}
}

// Cache memoizes JSON payloads in a CacheStore. Backend failures never
// reach callers: reads degrade to misses and writes are logged.
type Cache struct {
	store  adapter.CacheStore
	ttl    TTLPolicy
	logger *slog.Logger
}

// New creates a new Cache over store.
func New(store adapter.CacheStore, ttl TTLPolicy) *Cache {
	return &Cache{
		store:  store,
		ttl:    ttl,
		logger: slog.With("component", "cache"),
	}
}

// AggregateTTL is the expiration for dashboard and analytics payloads.
func (c *Cache) AggregateTTL() time.Duration {
	return c.ttl.Aggregate
}

// ListTTL is the expiration for resource listings.
func (c *Cache) ListTTL() time.Duration {
	return c.ttl.List
}

// load decodes the entry at key into dst. Backend errors and undecodable
// entries are both misses.
func (c *Cache) load(ctx context.Context, key string, dst any) bool {
	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "Cache read failed", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.WarnContext(ctx, "Discarding undecodable cache entry", "key", key, "error", err)
		return false
	}
	return true
}

// save encodes value and stores it at key.
func (c *Cache) save(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to encode cache entry", "key", key, "error", err)
		return
	}

	if err := c.store.Set(ctx, key, data, ttl); err != nil {
		c.logger.WarnContext(ctx, "Cache write failed", "key", key, "error", err)
	}
}

// Invalidate deletes every key that a write to resource makes stale for owner.
func (c *Cache) Invalidate(ctx context.Context, resource Resource, owner uuid.UUID) {
	c.deleteKeys(ctx, KeysFor(resource, owner))
}

// InvalidateOwner deletes every key cached for owner.
func (c *Cache) InvalidateOwner(ctx context.Context, owner uuid.UUID) {
	c.deleteKeys(ctx, OwnerKeys(owner))
}

func (c *Cache) deleteKeys(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.logger.ErrorContext(ctx, "Cache invalidation failed", "keys", keys, "error", err)
	}
}

// ReadThrough returns the cached value at key, or computes, stores and
// returns it. Compute errors are returned and nothing is cached.
func ReadThrough[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	var cached T
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	value, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to compute %s: %w", key, err)
	}

	c.save(ctx, key, value, ttl)
	return value, nil
}
