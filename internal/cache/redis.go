package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a shared Redis instance, for deployments where
// several dashboard replicas should share one provider-response cache.
// If the connection cannot be established the store degrades to a no-op and
// every lookup is a miss.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis connects to redisURL and returns a Redis store with the given
// entry TTL. An empty URL or a failed connection yields a disabled store
// rather than an error; the caller keeps working without caching.
func NewRedis(redisURL string, ttl time.Duration) *Redis {
	if redisURL == "" {
		log.Println("redis: no URL configured, response caching disabled")
		return &Redis{ttl: ttl}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, response caching disabled: %v", redisURL, err)
		return &Redis{ttl: ttl}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, response caching disabled: %v", err)
		return &Redis{ttl: ttl}
	}

	log.Println("redis: connected, response caching enabled")
	return &Redis{rdb: rdb, ttl: ttl}
}

// NewRedisWithClient wraps an existing client. Used by tests.
func NewRedisWithClient(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (r *Redis) Client() *redis.Client {
	return r.rdb
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	if r.rdb == nil {
		return nil, false
	}
	data, err := r.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("redis: get %q: %v", key, err)
		return nil, false
	}
	return data, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) {
	if r.rdb == nil {
		return
	}
	if err := r.rdb.Set(ctx, key, value, r.ttl).Err(); err != nil {
		log.Printf("redis: set %q: %v", key, err)
	}
}

// Close shuts down the Redis connection.
func (r *Redis) Close() error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Close()
}
