package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Feeds churn faster than individual items.
const (
	ItemCacheTTL = 5 * time.Minute
	FeedCacheTTL = time.Minute
)

// feedKey is the shared key for the home feed's first page.
const feedKey = "feed:questions"

// CacheService is the cache-invalidation collaborator: after a mutating
// operation the core signals which views of the data are stale. Reads go
// cache-aside; invalidation is by key.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, the client is nil and every operation is a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetItem retrieves a cached item response. Returns nil when not cached or
// caching is disabled.
func (c *CacheService) GetItem(ctx context.Context, itemType string, itemID int64) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, itemKey(itemType, itemID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetItem stores an item response.
func (c *CacheService) SetItem(ctx context.Context, itemType string, itemID int64, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, itemKey(itemType, itemID), b, ItemCacheTTL).Err()
}

// InvalidateItem removes an item from cache after a mutation, along with
// the home feed that embeds it.
func (c *CacheService) InvalidateItem(ctx context.Context, itemType string, itemID int64) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, itemKey(itemType, itemID), feedKey).Err()
}

// GetFeed retrieves the cached home feed first page.
func (c *CacheService) GetFeed(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, feedKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetFeed stores the home feed first page.
func (c *CacheService) SetFeed(ctx context.Context, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, feedKey, b, FeedCacheTTL).Err()
}

// InvalidateFeed drops the cached home feed.
func (c *CacheService) InvalidateFeed(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, feedKey).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func itemKey(itemType string, itemID int64) string {
	return fmt.Sprintf("%s:%d", itemType, itemID)
}
