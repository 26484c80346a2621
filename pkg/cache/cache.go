package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLDirectory = 2 * time.Minute // member directory listing
	TTLDefault   = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixMembers  = "members:"
	PrefixPrograms = "programs:"
)

// ErrCacheMiss key not present
var ErrCacheMiss = errors.New("cache miss")

// Service Redis cache service interface
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// Member directory cache
	GetMemberPage(ctx context.Context, page, limit int) ([]byte, error)
	SetMemberPage(ctx context.Context, page, limit int, data interface{}) error

	IsAvailable() bool
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a Redis-backed cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) GetMemberPage(ctx context.Context, page, limit int) ([]byte, error) {
	raw, err := c.client.Get(ctx, memberPageKey(page, limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return raw, nil
}

func (c *redisCache) SetMemberPage(ctx context.Context, page, limit int, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, memberPageKey(page, limit), raw, TTLDirectory).Err()
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func memberPageKey(page, limit int) string {
	return fmt.Sprintf("%spage:%d:%d", PrefixMembers, page, limit)
}
