package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/config"
)

// Client wraps the optional Redis connection. A nil inner client is valid and
// turns every guard into a no-op, so the site keeps working without Redis.
type Client struct {
	rdb *redis.Client
}

// Connect dials Redis when configured. A missing address or a failed ping
// logs a warning and returns a disabled client rather than an error.
func Connect(cfg *config.Config) *Client {
	if cfg.Redis.Addr == "" {
		log.Println("REDIS_ADDR not set, submission rate guard disabled")
		return &Client{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable, submission rate guard disabled: %v", err)
		return &Client{}
	}

	return &Client{rdb: rdb}
}

func (c *Client) Enabled() bool { return c != nil && c.rdb != nil }

// ClaimOnce sets key for ttl if it is not already held. It returns true when
// the claim succeeded, i.e. the caller is first within the window. When Redis
// is disabled or errors, the claim is granted; the database check behind it
// still catches real duplicates.
func (c *Client) ClaimOnce(ctx context.Context, key string, ttl time.Duration) bool {
	if !c.Enabled() {
		return true
	}
	ok, err := c.rdb.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		log.Printf("Redis SETNX failed for %s: %v", key, err)
		return true
	}
	return ok
}

// Release frees a claimed key early, used when the submission behind the
// claim failed and the parent should be able to retry immediately.
func (c *Client) Release(ctx context.Context, key string) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("Redis DEL failed for %s: %v", key, err)
	}
}
