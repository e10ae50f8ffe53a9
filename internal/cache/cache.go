// Package cache stores finished flight search results between runs, so a
// re-run after a crash or a config tweak does not repeat hour-long browser
// sessions for searches that already completed.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// resultTTL bounds how long a cached search stays valid. Fares move, so a day
// is already generous.
const resultTTL = 24 * time.Hour

// Cache is the result store used by the planner.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Key builds a cache key from its parts.
func Key(parts ...string) string {
	return "weekender:" + strings.Join(parts, "|")
}

// Redis is a Cache backed by a redis server.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the redis server at addr.
func NewRedis(addr string) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{client: rdb}
}

// Ping verifies the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, resultTTL).Err()
}

// Memory is an in-process Cache used when no redis address is configured,
// and as the test double.
type Memory struct {
	Data map[string]string
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{Data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.Data[key] = value
	return nil
}
