package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	redisClient "biogate.io/infrastructure/database/connection/cache"
	"biogate.io/infrastructure/logger"
)

type RedisRepository struct {
	Client *redis.Client
}

func (redisRepo *RedisRepository) preRequest() error {
	if redisRepo.Client == nil {
		conn, err := redisClient.GetInstance()
		if err != nil {
			return err
		}
		redisRepo.Client = conn.Client
		logger.Info("redis repository initialisation complete")
	}
	return nil
}

func (redisRepo *RedisRepository) CreateEntry(ctx context.Context, key string, payload interface{}, ttl time.Duration) bool {
	if err := redisRepo.preRequest(); err != nil {
		logger.Error("redis unavailable for CreateEntry", logger.LoggerOptions{Key: "error", Data: err})
		return false
	}
	if err := redisRepo.Client.Set(ctx, key, payload, ttl).Err(); err != nil {
		logger.Error("redis error occured while running CreateEntry", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false
	}
	return true
}

// FindOne returns nil when the key is missing or redis fails.
func (redisRepo *RedisRepository) FindOne(ctx context.Context, key string) *string {
	if err := redisRepo.preRequest(); err != nil {
		logger.Error("redis unavailable for FindOne", logger.LoggerOptions{Key: "error", Data: err})
		return nil
	}
	result, err := redisRepo.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		logger.Error("redis error occured while running FindOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return nil
	}
	return &result
}

func (redisRepo *RedisRepository) DeleteOne(ctx context.Context, key string) bool {
	if err := redisRepo.preRequest(); err != nil {
		logger.Error("redis unavailable for DeleteOne", logger.LoggerOptions{Key: "error", Data: err})
		return false
	}
	result, err := redisRepo.Client.Del(ctx, key).Result()
	if err != nil {
		logger.Error("redis error occured while running DeleteOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false
	}
	return result == 1
}

// IncrementField bumps a counter and sets its expiry on first use.
func (redisRepo *RedisRepository) IncrementField(ctx context.Context, key string, amount int64, ttl time.Duration) int64 {
	if err := redisRepo.preRequest(); err != nil {
		logger.Error("redis unavailable for IncrementField", logger.LoggerOptions{Key: "error", Data: err})
		return 0
	}
	result, err := redisRepo.Client.IncrBy(ctx, key, amount).Result()
	if err != nil {
		logger.Error("redis error occured while running IncrementField", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return 0
	}
	if result == amount && ttl > 0 {
		redisRepo.Client.Expire(ctx, key, ttl)
	}
	return result
}

// Cache resolves the shared connection on first use.
var Cache = &RedisRepository{}
