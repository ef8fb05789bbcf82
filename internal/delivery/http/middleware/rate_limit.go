package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	goredis "github.com/redis/go-redis/v9"
)

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// KeyFunc defaults to the client IP.
	KeyFunc   func(*gin.Context) string
	KeyPrefix string
	// FailClosed rejects requests when Redis errors instead of falling back to memory.
	FailClosed bool
}

// INCR with a TTL set on the first hit. Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func clientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// GlobalRateLimitConfig covers every route.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:ip:"}
}

// LoginRateLimitConfig protects the GoTrue relay from credential stuffing.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:login:", FailClosed: true}
}

// ContactRateLimitConfig limits anonymous contact form posts.
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:contact:"}
}

// memoryCounter is the fallback when Redis is not configured.
type memoryCounter struct {
	c *gocache.Cache
}

func newMemoryCounter(window time.Duration) *memoryCounter {
	return &memoryCounter{c: gocache.New(window, 5*time.Minute)}
}

func (m *memoryCounter) hit(key string, window time.Duration, now time.Time) (int, time.Time) {
	if err := m.c.Add(key, 1, window); err == nil {
		return 1, now.Add(window)
	}
	count, err := m.c.IncrementInt(key, 1)
	if err != nil {
		// Expired between Add and IncrementInt.
		m.c.Set(key, 1, window)
		return 1, now.Add(window)
	}
	_, resetAt, _ := m.c.GetWithExpiration(key)
	return count, resetAt
}

// RateLimitMiddleware counts requests per key in Redis when available and in
// process memory otherwise.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = clientIPKey
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	fallback := newMemoryCounter(config.Window)

	return func(c *gin.Context) {
		if config.Limit <= 0 {
			c.Next()
			return
		}
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time
		if client := redis.Client(); client != nil {
			var err error
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), client, fullKey, config.Window)
			if err != nil {
				if config.FailClosed {
					logRateLimitError(c, err)
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = fallback.hit(fullKey, config.Window, now)
			}
		} else {
			count, resetAt = fallback.hit(fullKey, config.Window, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			security.DefaultLogger().LogRateLimitTriggered(c.Request.Context(), c.ClientIP(), c.Request.UserAgent(), c.GetString(RequestIDKey), c.FullPath())
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, window time.Duration) (int, time.Time, error) {
	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

func logRateLimitError(c *gin.Context, err error) {
	security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
		Event:       security.EventRateLimitTriggered,
		SubjectType: "system",
		IP:          c.ClientIP(),
		RequestID:   c.GetString(RequestIDKey),
		Details:     map[string]interface{}{"error_type": "redis_error", "error": err.Error()},
	})
}
