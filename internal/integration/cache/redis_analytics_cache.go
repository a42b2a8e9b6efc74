// Package cache stores computed analytics reports in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wardrobe-manager/backend/config"
	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

const keyPrefix = "wardrobe:analytics:"

// RedisAnalyticsCache implements adapter.AnalyticsCache with one key per user.
type RedisAnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ adapter.AnalyticsCache = (*RedisAnalyticsCache)(nil)

// NewRedisAnalyticsCache wraps an existing client.
func NewRedisAnalyticsCache(client *redis.Client, ttl time.Duration) *RedisAnalyticsCache {
	return &RedisAnalyticsCache{client: client, ttl: ttl}
}

// Connect builds a client from cfg and checks it is reachable.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

// Get returns the cached report of a user. The boolean is false on a miss.
func (c *RedisAnalyticsCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a report for the configured TTL.
func (c *RedisAnalyticsCache) Set(ctx context.Context, userID uuid.UUID, report []byte) error {
	return c.client.Set(ctx, key(userID), report, c.ttl).Err()
}

// Invalidate drops the cached report of a user.
func (c *RedisAnalyticsCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, key(userID)).Err()
}
