package security

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// UploadLimiter enforces sliding-window upload quotas in Redis
type UploadLimiter struct {
	maxPerMinute int // per client IP
	maxPerDay    int // per owner
}

// KEYS[1] = limit key, ARGV = limit, window seconds, now. Returns 1 when allowed.
const uploadRateLimitScript = `
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)

if redis.call('ZCARD', key) >= limit then
    return 0
end

redis.call('ZADD', key, now, now .. '-' .. math.random(1000000))
redis.call('EXPIRE', key, window)
return 1
`

func NewUploadLimiter(perMin, perDay int) *UploadLimiter {
	if perMin <= 0 {
		perMin = 10
	}
	if perDay <= 0 {
		perDay = 200
	}
	return &UploadLimiter{maxPerMinute: perMin, maxPerDay: perDay}
}

// AllowUpload returns (allowed, retryAfterSeconds, error). Without Redis the
// upload is allowed and a non-nil error reports the degraded mode.
func (ul *UploadLimiter) AllowUpload(ctx context.Context, ip, userID string) (bool, int, error) {
	client := redis.Client()
	if client == nil {
		return true, 0, fmt.Errorf("upload limiter unavailable: redis not connected")
	}

	now := time.Now().Unix()

	allowed, err := ul.checkLimit(ctx, client, "ratelimit:upload:ip:"+ip, ul.maxPerMinute, 60, now)
	if err != nil {
		return false, 60, fmt.Errorf("upload limit check failed: %w", err)
	}
	if !allowed {
		return false, 60, nil
	}

	if userID != "" {
		allowed, err = ul.checkLimit(ctx, client, "ratelimit:upload:user:"+userID, ul.maxPerDay, 86400, now)
		if err != nil {
			return false, 3600, fmt.Errorf("upload limit check failed: %w", err)
		}
		if !allowed {
			return false, 3600, nil
		}
	}

	return true, 0, nil
}

func (ul *UploadLimiter) checkLimit(ctx context.Context, client *goredis.Client, key string, limit, window int, now int64) (bool, error) {
	result, err := client.Eval(ctx, uploadRateLimitScript, []string{key}, limit, window, now).Result()
	if err != nil {
		return false, err
	}
	allowed, ok := result.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected result type from upload limit script")
	}
	return allowed == 1, nil
}
