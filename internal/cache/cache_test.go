package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/videoparty/clips-ms-go/internal/db"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetDeleteClipDetails(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()
	id := db.NewUUID()

	// 1) Cache miss
	got, err := c.GetClipDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetClipDetails miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetClipDetails miss: got %v; want nil", got)
	}

	// 2) Set + Get
	payload := []byte(`{"id":"` + id.String() + `"}`)
	c.SetClipDetails(ctx, id, payload)
	c.SetEtagClipDetails(ctx, id, "cafebabe")

	if gotTTL := mr.TTL(detailsKey(id)); gotTTL <= 0 || gotTTL > ttl {
		t.Errorf("redis TTL = %v; want within %v", gotTTL, ttl)
	}
	got, err = c.GetClipDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetClipDetails hit: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("GetClipDetails = %q; want %q", got, payload)
	}
	etag, err := c.GetEtagClipDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetEtagClipDetails: %v", err)
	}
	if etag != "cafebabe" {
		t.Errorf("etag = %q; want %q", etag, "cafebabe")
	}

	// 3) Delete clears both the payload and the etag
	if err := c.DeleteClipDetails(ctx, id); err != nil {
		t.Fatalf("DeleteClipDetails: %v", err)
	}
	if got, _ := c.GetClipDetails(ctx, id); got != nil {
		t.Errorf("after delete, GetClipDetails = %v; want nil", got)
	}
	if etag, _ := c.GetEtagClipDetails(ctx, id); etag != "" {
		t.Errorf("after delete, etag = %q; want empty", etag)
	}
}

func TestGetSetDeleteClipList(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	if got, err := c.GetClipList(ctx); err != nil || got != nil {
		t.Fatalf("initial miss: got %v, err %v", got, err)
	}

	payload := []byte(`[{"id":"abc"}]`)
	c.SetClipList(ctx, payload)
	c.SetEtagClipList(ctx, "deadbeef")

	if gotTTL := mr.TTL(listKey); gotTTL <= 0 || gotTTL > ttl {
		t.Errorf("redis TTL = %v; want within %v", gotTTL, ttl)
	}
	if got, err := c.GetClipList(ctx); err != nil || string(got) != string(payload) {
		t.Errorf("GetClipList = %q, err %v", got, err)
	}
	if etag, err := c.GetEtagClipList(ctx); err != nil || etag != "deadbeef" {
		t.Errorf("GetEtagClipList = %q, err %v", etag, err)
	}

	if err := c.DeleteClipList(ctx); err != nil {
		t.Fatalf("DeleteClipList: %v", err)
	}
	if got, _ := c.GetClipList(ctx); got != nil {
		t.Errorf("after delete, GetClipList = %v; want nil", got)
	}
}

func TestGetClipDetails_RedisError(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()
	id := db.NewUUID()

	// Simulate Redis unreachable
	mr.Close()

	got, err := c.GetClipDetails(ctx, id)
	if got != nil {
		t.Errorf("Expected nil on Redis error, got %v", got)
	}
	if err == nil || !strings.Contains(err.Error(), "redis get failed") {
		t.Errorf("Expected redis get failed error, got %v", err)
	}
}

func TestDeleteClipDetails_RedisError(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()
	id := db.NewUUID()

	// Simulate Redis unreachable before Delete
	mr.Close()

	err := c.DeleteClipDetails(ctx, id)
	if err == nil || !strings.Contains(err.Error(), "redis del failed") {
		t.Errorf("Expected redis del failed error, got %v", err)
	}
}

func TestCacheKeys(t *testing.T) {
	id := db.NewUUID()
	if got := detailsKey(id); got != "clip_details:"+id.String() {
		t.Errorf("detailsKey = %q", got)
	}
	if got := etagDetailsKey(id); got != "etag_clip_details:"+id.String() {
		t.Errorf("etagDetailsKey = %q", got)
	}
}
