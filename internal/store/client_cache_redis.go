package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

// RedisKeyPrefix namespaces every key written by [redisCache].
const RedisKeyPrefix = "storefront:"

// redisCache is the durable [Cache] kept in Redis. Entries do not expire.
type redisCache struct {
	client redis.UniversalClient
	logger *logger.Logger
}

// NewRedisCache constructs a [Cache] over client.
func NewRedisCache(client redis.UniversalClient, log *logger.Logger) Cache {
	return &redisCache{client: client, logger: log}
}

func (c *redisCache) Load(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, RedisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		c.logger.Err(err).Str("func", "*redisCache.Load").Str("key", key).Msg("error loading value")
		return "", fmt.Errorf("%w: %w", ErrCacheRead, err)
	}
	return value, nil
}

func (c *redisCache) Save(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, RedisKeyPrefix+key, value, 0).Err(); err != nil {
		c.logger.Err(err).Str("func", "*redisCache.Save").Str("key", key).Msg("error saving value")
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, RedisKeyPrefix+key).Err(); err != nil {
		c.logger.Err(err).Str("func", "*redisCache.Delete").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	return nil
}
