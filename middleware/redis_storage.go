package middleware

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"truleadai/config"
)

// FiberRedisStorage implements fiber.Storage over Redis so rate limit
// counters are shared across instances.
type FiberRedisStorage struct {
	client *redis.Client
}

func NewFiberRedisStorage(cfg config.RedisConfig) *FiberRedisStorage {
	return &FiberRedisStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (r *FiberRedisStorage) Get(key string) ([]byte, error) {
	return r.client.Get(context.Background(), key).Bytes()
}

func (r *FiberRedisStorage) Set(key string, val []byte, exp time.Duration) error {
	return r.client.Set(context.Background(), key, val, exp).Err()
}

func (r *FiberRedisStorage) Delete(key string) error {
	return r.client.Del(context.Background(), key).Err()
}

func (r *FiberRedisStorage) Reset() error {
	return r.client.FlushDB(context.Background()).Err()
}

func (r *FiberRedisStorage) Close() error {
	return r.client.Close()
}
