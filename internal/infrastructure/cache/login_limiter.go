package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLoginLimiter counts failed login attempts per username inside a
// rolling window. It implements user.LoginLimiter.
type RedisLoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLoginLimiter(r *RedisClient, maxAttempts int, window time.Duration) *RedisLoginLimiter {
	return &RedisLoginLimiter{
		client:      r.Client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *RedisLoginLimiter) key(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

// Allow reports whether another attempt for username is permitted.
func (l *RedisLoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	count, err := l.client.Get(ctx, l.key(username)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read attempt counter: %w", err)
	}
	return count < l.maxAttempts, nil
}

// RecordFailure bumps the counter. The TTL is set only when the key is
// created so the window does not slide on every failure.
func (l *RedisLoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("increment attempt counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("set attempt counter ttl: %w", err)
		}
	}

	return nil
}

// Reset clears the counter after a successful login.
func (l *RedisLoginLimiter) Reset(ctx context.Context, username string) error {
	if err := l.client.Del(ctx, l.key(username)).Err(); err != nil {
		return fmt.Errorf("reset attempt counter: %w", err)
	}
	return nil
}
