package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// GetCached returns the cached JSON payload for key, or nil on a miss or
// when Redis is not configured.
func GetCached(key string) []byte {
	if Client == nil {
		return nil
	}
	val, err := Client.Get(Ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return val
}

// SetCached stores a JSON payload best-effort; cache failures never affect
// the request.
func SetCached(key string, payload []byte, ttl time.Duration) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, key, payload, ttl)
}

// Invalidate drops cached keys after a write.
func Invalidate(keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}
	Client.Del(Ctx, keys...)
}
