package store

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore implements Store on a Redis instance. Values never expire;
// the lead pipeline owns its keys for the lifetime of the account.
type RedisStore struct {
	client *redis.Client
}

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Get(key string) ([]byte, error) {
	val, err := r.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	return val, err
}

func (r *RedisStore) Set(key string, val []byte) error {
	return r.client.Set(context.Background(), key, val, 0).Err()
}

func (r *RedisStore) Delete(key string) error {
	return r.client.Del(context.Background(), key).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
