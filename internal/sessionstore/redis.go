// Package sessionstore provides backends for the server-side session store.
package sessionstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage adapts a Redis client to fiber.Storage so session state can
// live outside the process and survive restarts or multiple instances.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage connects to the Redis instance at addr (host:port) and
// verifies the connection before returning.
func NewRedisStorage(addr string) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStorage{client: client}, nil
}

// Get retrieves the value for the given session key. A missing key yields
// (nil, nil) per the fiber.Storage contract.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

// Set stores the value under the given session key with an expiration. A zero
// expiration stores the key without a TTL.
func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), key, val, exp).Err()
}

// Delete removes the session key.
func (s *RedisStorage) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

// Reset removes all keys. Sessions share the database, so this flushes it.
func (s *RedisStorage) Reset() error {
	return s.client.FlushDB(context.Background()).Err()
}

// Close releases the underlying client.
func (s *RedisStorage) Close() error {
	return s.client.Close()
}
