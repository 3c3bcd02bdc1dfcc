package initializers

import (
	"context"
	"jobboard-backend/config"
	"jobboard-backend/middleware"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// ApplyLimiter is nil when redis is not configured or not reachable, applications are not limited then
var ApplyLimiter middleware.Limiter

func InitRedis(ctx context.Context) {
	if config.Conf.Redis.Addr == "" {
		log.Warn("redis is not configured, apply rate limit is disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Error("redis ping failed, apply rate limit is disabled")
		_ = client.Close()
		return
	}
	ApplyLimiter = middleware.NewRedisLimiter(client)
	log.Info("redis client initialized")
}
