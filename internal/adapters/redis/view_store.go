// Package redis stores blog view counters in a single Redis hash: one field
// per slug, incremented atomically with HINCRBY.
package redis

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/blog"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/config"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ViewStore     = (*ViewStore)(nil)
	_ ports.HealthChecker = (*ViewStore)(nil)
)

// viewsKey is the hash holding every counter, below the configured prefix.
const viewsKey = "blog:views"

// NewClient opens a client for cfg. The connection is lazy; readiness is
// reported through ViewStore.HealthCheck.
func NewClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// ViewStore implements ports.ViewStore on a Redis hash.
type ViewStore struct {
	client *redis.Client
	key    string
}

// NewViewStore creates a ViewStore. An empty prefix uses the bare key.
func NewViewStore(client *redis.Client, prefix string) *ViewStore {
	key := viewsKey
	if prefix != "" {
		key = prefix + ":" + viewsKey
	}
	return &ViewStore{client: client, key: key}
}

// Increment adds one view to slug and returns the new count.
func (s *ViewStore) Increment(ctx context.Context, slug string) (int64, error) {
	n, err := s.client.HIncrBy(ctx, s.key, slug, 1).Result()
	if err != nil {
		return 0, fmt.Errorf("hincrby %s %s: %w: %w", s.key, slug, domain.ErrUnavailable, err)
	}
	return n, nil
}

// Counts returns every counter ordered by slug. Fields that do not hold an
// integer are skipped.
func (s *ViewStore) Counts(ctx context.Context) ([]blog.ViewCount, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w: %w", s.key, domain.ErrUnavailable, err)
	}

	counts := make([]blog.ViewCount, 0, len(fields))
	for slug, raw := range fields {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		counts = append(counts, blog.ViewCount{Slug: slug, Count: n})
	}
	slices.SortFunc(counts, func(a, b blog.ViewCount) int {
		return cmp.Compare(a.Slug, b.Slug)
	})
	return counts, nil
}

// Name identifies the store in readiness results.
func (s *ViewStore) Name() string {
	return "redis"
}

// HealthCheck pings the server.
func (s *ViewStore) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}
