package middleware

import (
	"context"
	apimodels "jobboard-backend/models/api"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter is a fixed window counter shared by all instances of the service
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

// Allow fails open when redis is unavailable
func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		log.WithError(err).Warn("rate limit check failed")
		return true
	}
	return allowed == 1
}

// RateLimit limits requests per key, a nil limiter or an empty key lets everything through
func RateLimit(limiter Limiter, keyFn func(ctx *fiber.Ctx) string, limit int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if limiter == nil {
			return ctx.Next()
		}
		key := keyFn(ctx)
		if key == "" {
			return ctx.Next()
		}
		if !limiter.Allow(key, limit, window) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(apimodels.NewError("Too many requests, try again later"))
		}
		return ctx.Next()
	}
}

// ApplyRateKey limits applications per client address and job
func ApplyRateKey(ctx *fiber.Ctx) string {
	return "rate:apply:" + ctx.IP() + ":" + ctx.Params("id")
}
