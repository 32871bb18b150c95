package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"youthcentre_backend/internals/configs"
	"youthcentre_backend/internals/logger"
)

var Redis *redis.Client

// ConnectRedis opens the cache client. Without REDIS_HOST the cache is
// disabled and Redis stays nil.
func ConnectRedis(cfg *configs.Config) error {
	if !cfg.RedisEnabled() {
		logger.Log.Info("REDIS_HOST not set, admin scope cache disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	Redis = client
	logger.Log.Infof("redis connected at %s", cfg.RedisAddr())
	return nil
}

func CloseRedis() {
	if Redis != nil {
		_ = Redis.Close()
	}
}
