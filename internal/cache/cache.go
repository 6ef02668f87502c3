package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/port"
)

// ttl bounds staleness of rendered payloads; views/likes are mutated outside
// this service, so entries must not outlive this window even without an
// explicit invalidation.
const ttl = 5 * time.Minute

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetClipDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	return c.get(ctx, detailsKey(id))
}

func (c *Cache) GetEtagClipDetails(ctx context.Context, id db.UUID) (string, error) {
	raw, err := c.get(ctx, etagDetailsKey(id))
	return string(raw), err
}

func (c *Cache) SetClipDetails(ctx context.Context, id db.UUID, data []byte) {
	c.set(ctx, detailsKey(id), data)
}

func (c *Cache) SetEtagClipDetails(ctx context.Context, id db.UUID, etag string) {
	c.set(ctx, etagDetailsKey(id), []byte(etag))
}

func (c *Cache) DeleteClipDetails(ctx context.Context, id db.UUID) error {
	log.Printf("deleting cache entries for clip #%s...", id)
	if err := c.client.Del(ctx, detailsKey(id), etagDetailsKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) GetClipList(ctx context.Context) ([]byte, error) {
	return c.get(ctx, listKey)
}

func (c *Cache) GetEtagClipList(ctx context.Context) (string, error) {
	raw, err := c.get(ctx, etagListKey)
	return string(raw), err
}

func (c *Cache) SetClipList(ctx context.Context, data []byte) {
	c.set(ctx, listKey, data)
}

func (c *Cache) SetEtagClipList(ctx context.Context, etag string) {
	c.set(ctx, etagListKey, []byte(etag))
}

func (c *Cache) DeleteClipList(ctx context.Context) error {
	log.Print("deleting clip list cache entries...")
	if err := c.client.Del(ctx, listKey, etagListKey).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) set(ctx context.Context, key string, data []byte) {
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("redis set failed for key %q: %v", key, err)
	}
}

const (
	listKey     = "clips_list"
	etagListKey = "etag_clips_list"
)

func detailsKey(id db.UUID) string {
	return "clip_details:" + id.String()
}

func etagDetailsKey(id db.UUID) string {
	return "etag_clip_details:" + id.String()
}
