package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"infinite-experiment/routeplanner/internal/logging"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 3 * time.Second

// RedisCacheService implements CacheInterface using Redis. Values are stored
// as JSON.
type RedisCacheService struct {
	client *redis.Client
}

// Ensure RedisCacheService implements CacheInterface
var _ CacheInterface = (*RedisCacheService)(nil)

// NewRedisCacheService connects to addr and verifies the connection.
func NewRedisCacheService(addr, password string) (*RedisCacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.Info("Connected to Redis", "addr", addr)
	return &RedisCacheService{client: client}, nil
}

// Set stores a value in Redis with the given key and duration
func (r *RedisCacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Error("Redis cache: failed to marshal value", "key", key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Set(ctx, key, data, duration).Err(); err != nil {
		logging.Error("Redis cache: failed to set key", "key", key, "error", err)
	}
}

// Get decodes the JSON stored under key into dest.
func (r *RedisCacheService) Get(key string, dest interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		logging.Error("Redis cache: failed to get key", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logging.Warn("Redis cache: failed to unmarshal value", "key", key, "error", err)
		return false
	}
	return true
}

// Delete removes a value from Redis by key
func (r *RedisCacheService) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Del(ctx, key).Err(); err != nil {
		logging.Error("Redis cache: failed to delete key", "key", key, "error", err)
	}
}

// Ping reports whether Redis is reachable.
func (r *RedisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisCacheService) Close() error {
	return r.client.Close()
}
