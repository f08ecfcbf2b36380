// Package ratelimit keeps fixed-window request counters in Redis. When
// Redis is unreachable the limiter fails open - requests go through.
package ratelimit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter struct {
	client *redis.Client
}

// New connects to Redis using REDIS_URL / REDIS_PASSWORD.
func New() (*Limiter, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:         redisURL,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &Limiter{client: client}, nil
}

func (l *Limiter) Close() error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Close()
}

// Available checks if Redis is connected
func (l *Limiter) Available() bool {
	if l == nil || l.client == nil {
		return false
	}
	_, err := l.client.Ping(context.Background()).Result()
	return err == nil
}

// Check counts one request against the key's fixed window and reports
// whether it is still within maxRequests, plus how many requests remain.
func (l *Limiter) Check(ctx context.Context, key string, maxRequests int, window time.Duration) (bool, int, error) {
	if !l.Available() {
		return true, maxRequests, nil
	}

	key = "ratelimit:" + key

	count, err := l.client.Get(ctx, key).Int()
	if err == redis.Nil {
		// First request in this window - initialize the counter
		if err := l.client.Set(ctx, key, 1, window).Err(); err != nil {
			return false, 0, err
		}
		return true, maxRequests - 1, nil
	}
	if err != nil {
		return false, 0, err
	}

	if count >= maxRequests {
		ttl, _ := l.client.TTL(ctx, key).Result()
		return false, 0, fmt.Errorf("rate limit exceeded, retry after %v", ttl)
	}

	newCount, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	return true, maxRequests - int(newCount), nil
}

// Reset clears the counter for a key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	if !l.Available() {
		return nil
	}
	return l.client.Del(ctx, "ratelimit:"+key).Err()
}
