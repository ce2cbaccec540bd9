package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the shared Redis client used for short-TTL analytics caching.
// It stays nil when Redis is unreachable; callers must treat a nil client
// as "no cache".
var Cache *redis.Client

// InitCache connects to Redis if REDIS_ADDR is configured. Analytics works
// without it, just uncached.
func InitCache() {
	addr := getEnv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("REDIS_ADDR not set – analytics caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s – analytics caching disabled: %v", addr, err)
		return
	}

	Cache = client
}
