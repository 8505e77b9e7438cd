package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"tour-planner-service/internal/domain"
)

// RedisLocationCache stores scraped location lists as JSON values with a
// TTL, for deployments where a shared Redis is cheaper than re-scraping.
type RedisLocationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisLocationCache(url string, ttl time.Duration) (*RedisLocationCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis location cache: parse url: %w", err)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisLocationCache{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

// NewRedisLocationCacheFromClient wraps an existing client (tests).
func NewRedisLocationCacheFromClient(rdb *redis.Client, ttl time.Duration) *RedisLocationCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisLocationCache{rdb: rdb, ttl: ttl}
}

func (c *RedisLocationCache) key(source string) string { return "locations:" + source }

// Get returns the cached location list for a source, or nil on a miss.
func (c *RedisLocationCache) Get(ctx context.Context, source string) ([]domain.Location, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errors.New("get location cache: source must not be empty")
	}

	payload, err := c.rdb.Get(ctx, c.key(source)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get location cache: redis get: %w", err)
	}

	var locs []domain.Location
	if err := json.Unmarshal(payload, &locs); err != nil {
		return nil, fmt.Errorf("get location cache: decode payload: %w", err)
	}
	return locs, nil
}

// Put stores the ordered location list for a source with the cache TTL.
func (c *RedisLocationCache) Put(ctx context.Context, source string, locs []domain.Location) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return errors.New("insert location cache: source must not be empty")
	}
	if len(locs) == 0 {
		return nil
	}

	payload, err := json.Marshal(locs)
	if err != nil {
		return fmt.Errorf("insert location cache: encode payload: %w", err)
	}

	if err := c.rdb.Set(ctx, c.key(source), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert location cache: redis set: %w", err)
	}
	return nil
}
