package cache

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"biogate.io/infrastructure/logger"
	"github.com/redis/go-redis/v9"
)

type RedisConnection struct {
	Client *redis.Client
}

var (
	instance *RedisConnection
	mu       sync.Mutex
)

var ErrCacheUnavailable = errors.New("redis connection has not been initialised")

func ConnectToCache() {
	opt := &redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
		PoolSize: 10,
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("could not reach redis", logger.LoggerOptions{Key: "error", Data: err})
	}
	UseClient(client)
	logger.Info("connected to redis successfully")
}

// UseClient replaces the shared connection, tests point it at miniredis.
func UseClient(client *redis.Client) {
	mu.Lock()
	defer mu.Unlock()
	instance = &RedisConnection{Client: client}
}

func GetInstance() (*RedisConnection, error) {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		return nil, ErrCacheUnavailable
	}
	return instance, nil
}

func Disconnect() {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		return
	}
	if err := instance.Client.Close(); err != nil {
		logger.Warning("redis close failed", logger.LoggerOptions{Key: "error", Data: err})
	}
	instance = nil
}
