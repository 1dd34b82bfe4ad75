package cache

import (
	"context"
	"encoding/json"
	"time"

	"trending-board/domain/dto"
	"trending-board/domain/repository"
	"trending-board/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "trending:"

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// RedisTrendingCache stores results as JSON under a common key prefix so that
// InvalidateAll can drop every entry in one pass. Used instead of the
// in-memory backend when REDIS_HOST is configured, which lets several
// dashboard replicas share one fetch per parameter tuple.
type RedisTrendingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTrendingCache(client *redis.Client, ttl time.Duration) repository.ITrendingCache {
	return &RedisTrendingCache{client: client, ttl: ttl}
}

func (c *RedisTrendingCache) Get(ctx context.Context, key string) ([]dto.TrendingVideo, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	var items []dto.TrendingVideo
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Dropping undecodable trending cache entry")
		_ = c.client.Del(ctx, redisKeyPrefix+key).Err()
		return nil, false
	}
	return items, true
}

func (c *RedisTrendingCache) Set(ctx context.Context, key string, items []dto.TrendingVideo) {
	raw, err := json.Marshal(items)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed encoding trending cache entry")
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed writing trending cache entry")
	}
}

func (c *RedisTrendingCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
