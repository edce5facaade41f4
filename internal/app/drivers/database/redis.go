package database

import (
	"context"
	"delivery-hours-service/internal/app/config"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to redis for the delivery hours cache. A failed
// ping is logged but not fatal: the service degrades to fetching upstream
// schedules on every request instead of refusing to start.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Warn("could not connect to redis, schedule caching is disabled",
			zap.String("addr", rdb.Options().Addr),
			zap.Error(err),
		)
	}

	return rdb
}
