package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/flexprice/clinicbilling/internal/config"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RedisCache implements Cache on top of redis so several processes can share
// one coupon cache. Values are stored as JSON and come back from Get as []byte;
// use GetTyped to decode them.
type RedisCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisCache connects to cfg.Cache.RedisURL and pings it
func NewRedisCache(cfg *config.Configuration, log *logger.Logger) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client, logger: log}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (interface{}, bool) {
	span := startSpan(ctx, "redis", "get", key)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		finishSpan(span, false, nil)
		return nil, false
	}
	if err != nil {
		finishSpan(span, false, err)
		c.logger.Warnw("redis get failed, treating as cache miss", "key", key, "error", err)
		return nil, false
	}
	finishSpan(span, true, nil)
	return data, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	span := startSpan(ctx, "redis", "set", key)

	data, err := json.Marshal(value)
	if err != nil {
		finishSpan(span, false, err)
		c.logger.Errorw("failed to encode cache value", "key", key, "error", err)
		return
	}

	err = c.client.Set(ctx, key, data, redisTTL(expiration)).Err()
	finishSpan(span, false, err)
	if err != nil {
		c.logger.Warnw("redis set failed", "key", key, "error", err)
	}
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warnw("redis delete failed", "key", key, "error", err)
	}
}

func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) {
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warnw("redis delete failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warnw("redis scan failed", "prefix", prefix, "error", err)
	}
}

func (c *RedisCache) Flush(ctx context.Context) {
	if err := c.client.FlushDB(ctx).Err(); err != nil {
		c.logger.Warnw("redis flush failed", "error", err)
	}
}

// Close releases the underlying connection pool
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// redisTTL maps Cache expirations onto redis semantics, where 0 means keep forever
// and -1 would mean "keep the existing TTL".
func redisTTL(expiration time.Duration) time.Duration {
	switch {
	case expiration == NoExpiration:
		return 0
	case expiration == 0:
		return DefaultExpiration
	default:
		return expiration
	}
}
