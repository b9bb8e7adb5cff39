package cache

import (
	"context"
	"encoding/json"

	"github.com/hjerpbakk/dipsbot/src/common/utils"
	"golang.org/x/sync/singleflight"
)

// Store persists encoded cache values. Implementations own eviction policy.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Cache is a read-through cache with single-flight semantics: at most one
// fetch is in flight per key, and concurrent callers for the same key wait
// for that fetch instead of issuing duplicates. Failed fetches are never
// stored, so the next call retries the fetch rather than replaying the
// failure.
type Cache[T any] struct {
	store Store
	group singleflight.Group
}

func New[T any](store Store) *Cache[T] {
	return &Cache[T]{store: store}
}

func (c *Cache[T]) GetOrSet(ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		if encoded, found, err := c.store.Get(ctx, key); err == nil && found {
			var cached T
			if err := json.Unmarshal(encoded, &cached); err == nil {
				return cached, nil
			}
		}

		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		if encoded, err := json.Marshal(fetched); err == nil {
			if err := c.store.Set(ctx, key, encoded); err != nil {
				utils.NamedLogger("cache").Warnw("failed to store cache value", "key", key, "error", err)
			}
		}

		return fetched, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}
