package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

const catalogCacheKey = "courses:catalog"

// CatalogCache is a read cache for the public course catalog.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Course, bool)
	Set(ctx context.Context, courses []domain.Course)
	Invalidate(ctx context.Context)
}

// redisCatalogCache stores the serialized catalog in Redis with a TTL.
// Cache failures degrade to a storage read and are only logged.
type redisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCatalogCache builds the cache.
func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) CatalogCache {
	return &redisCatalogCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisCatalogCache) Get(ctx context.Context) ([]domain.Course, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var courses []domain.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		c.logger.Warn("corrupt catalog cache entry", zap.Error(err))
		return nil, false
	}
	return courses, true
}

func (c *redisCatalogCache) Set(ctx context.Context, courses []domain.Course) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(courses)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, catalogCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write catalog cache", zap.Error(err))
	}
}

func (c *redisCatalogCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, catalogCacheKey).Err(); err != nil {
		c.logger.Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}
