package cache_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/integration/cachestore"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.New(cachestore.NewRedisStore(client), cache.DefaultTTLPolicy()), mr
}

func TestReadThrough(t *testing.T) {
	ctx := context.Background()

	t.Run("miss computes and stores with ttl", func(t *testing.T) {
		c, mr := newTestCache(t)
		calls := 0
		compute := func(context.Context) (payload, error) {
			calls++
			return payload{Name: "accounts", Count: 3}, nil
		}

		got, err := cache.ReadThrough(ctx, c, "accounts:test", 30*time.Minute, compute)
		if err != nil {
			t.Fatalf("ReadThrough() error = %v", err)
		}
		if got.Count != 3 || calls != 1 {
			t.Errorf("got %+v after %d calls", got, calls)
		}
		if !mr.Exists("accounts:test") {
			t.Fatal("value was not stored")
		}
		if ttl := mr.TTL("accounts:test"); ttl != 30*time.Minute {
			t.Errorf("TTL = %v, want 30m", ttl)
		}
	})

	t.Run("hit skips compute", func(t *testing.T) {
		c, _ := newTestCache(t)
		calls := 0
		compute := func(context.Context) (payload, error) {
			calls++
			return payload{Name: "budgets", Count: calls}, nil
		}

		_, _ = cache.ReadThrough(ctx, c, "budgets:test", time.Minute, compute)
		got, err := cache.ReadThrough(ctx, c, "budgets:test", time.Minute, compute)
		if err != nil {
			t.Fatalf("ReadThrough() error = %v", err)
		}
		if calls != 1 {
			t.Errorf("compute called %d times, want 1", calls)
		}
		if got.Count != 1 {
			t.Errorf("cached Count = %d, want 1", got.Count)
		}
	})

	t.Run("undecodable entry is a miss", func(t *testing.T) {
		c, mr := newTestCache(t)
		if err := mr.Set("dashboard:test", "{not json"); err != nil {
			t.Fatal(err)
		}

		got, err := cache.ReadThrough(ctx, c, "dashboard:test", time.Minute, func(context.Context) (payload, error) {
			return payload{Name: "fresh"}, nil
		})
		if err != nil {
			t.Fatalf("ReadThrough() error = %v", err)
		}
		if got.Name != "fresh" {
			t.Errorf("Name = %q, want fresh", got.Name)
		}
		stored, _ := mr.Get("dashboard:test")
		if stored != `{"name":"fresh","count":0}` {
			t.Errorf("stored = %q, want the recomputed payload", stored)
		}
	})

	t.Run("unreachable backend falls through to compute", func(t *testing.T) {
		c, mr := newTestCache(t)
		mr.Close()

		got, err := cache.ReadThrough(ctx, c, "goals:test", time.Minute, func(context.Context) (payload, error) {
			return payload{Name: "computed"}, nil
		})
		if err != nil {
			t.Fatalf("ReadThrough() error = %v", err)
		}
		if got.Name != "computed" {
			t.Errorf("Name = %q, want computed", got.Name)
		}
	})

	t.Run("compute error is returned and nothing cached", func(t *testing.T) {
		c, mr := newTestCache(t)
		boom := errors.New("boom")

		_, err := cache.ReadThrough(ctx, c, "analytics:test", time.Minute, func(context.Context) (payload, error) {
			return payload{}, boom
		})
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want wrapped boom", err)
		}
		if mr.Exists("analytics:test") {
			t.Error("failed computation must not be cached")
		}
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	t.Run("transaction write clears owner listings and aggregates only", func(t *testing.T) {
		c, mr := newTestCache(t)
		for _, key := range cache.OwnerKeys(owner) {
			_ = mr.Set(key, "{}")
		}
		for _, key := range cache.OwnerKeys(other) {
			_ = mr.Set(key, "{}")
		}

		c.Invalidate(ctx, cache.ResourceTransactions, owner)

		for _, key := range cache.KeysFor(cache.ResourceTransactions, owner) {
			if mr.Exists(key) {
				t.Errorf("%s should be invalidated", key)
			}
		}
		if !mr.Exists(cache.GoalsKey(owner)) {
			t.Error("goal listing does not depend on transactions")
		}
		for _, key := range cache.OwnerKeys(other) {
			if !mr.Exists(key) {
				t.Errorf("%s belongs to another owner and must survive", key)
			}
		}
	})

	t.Run("invalidation failure is swallowed", func(t *testing.T) {
		c, mr := newTestCache(t)
		mr.Close()

		c.Invalidate(ctx, cache.ResourceBudgets, owner)
	})

	t.Run("owner wipe clears every owner key", func(t *testing.T) {
		c, mr := newTestCache(t)
		for _, key := range cache.OwnerKeys(owner) {
			_ = mr.Set(key, "{}")
		}

		c.InvalidateOwner(ctx, owner)

		if keys := mr.Keys(); len(keys) != 0 {
			t.Errorf("remaining keys = %v", keys)
		}
	})
}

func TestKeysFor(t *testing.T) {
	owner := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	id := owner.String()

	tests := []struct {
		resource cache.Resource
		want     []string
	}{
		{cache.ResourceTransactions, []string{"accounts:" + id, "budgets:" + id, "dashboard:" + id, "analytics:" + id + ":monthly", "analytics:" + id + ":yearly"}},
		{cache.ResourceAccounts, []string{"accounts:" + id, "dashboard:" + id, "analytics:" + id + ":monthly", "analytics:" + id + ":yearly"}},
		{cache.ResourceBudgets, []string{"budgets:" + id, "dashboard:" + id, "analytics:" + id + ":monthly", "analytics:" + id + ":yearly"}},
		{cache.ResourceGoals, []string{"goals:" + id, "dashboard:" + id, "analytics:" + id + ":monthly", "analytics:" + id + ":yearly"}},
		{cache.ResourceRecurring, []string{"dashboard:" + id, "analytics:" + id + ":monthly", "analytics:" + id + ":yearly"}},
		{cache.ResourceDepartments, []string{"departments:list"}},
	}

	for _, tt := range tests {
		t.Run(tt.resource.String(), func(t *testing.T) {
			got := cache.KeysFor(tt.resource, owner)
			sort.Strings(got)
			want := append([]string(nil), tt.want...)
			sort.Strings(want)
			if len(got) != len(want) {
				t.Fatalf("KeysFor() = %v, want %v", got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("KeysFor()[%d] = %s, want %s", i, got[i], want[i])
				}
			}
		})
	}
}
