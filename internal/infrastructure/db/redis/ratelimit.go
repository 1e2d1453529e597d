package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window request counter backed by Redis.
// Key format: ratelimit:<key>:<window start unix>
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow reports whether the caller identified by key may proceed. On a Redis
// error the request is allowed; rate limiting never takes the API down.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	bucket := l.bucketKey(key, now)

	n, err := l.client.Incr(ctx, bucket).Result()
	if err != nil {
		return true, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		// First hit in this window owns the expiry.
		if err := l.client.Expire(ctx, bucket, l.window).Err(); err != nil {
			return true, fmt.Errorf("ratelimit expire: %w", err)
		}
	}

	return n <= int64(l.limit), nil
}

func (l *RateLimiter) bucketKey(key string, now time.Time) string {
	windowStart := now.Unix() - now.Unix()%int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, windowStart)
}
