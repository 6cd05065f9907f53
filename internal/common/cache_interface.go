package common

import "time"

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get copies the value stored under key into dest, which must be a
	// pointer. Returns false when the key is missing or cannot be decoded.
	Get(key string, dest interface{}) bool

	// Delete removes a value from cache by key
	Delete(key string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}

// GetOrSet returns the cached value for key, or loads it and caches the
// result for duration. Loader errors are returned and nothing is cached.
func GetOrSet[T any](c CacheInterface, key string, duration time.Duration, loader func() (T, error)) (T, bool, error) {
	var cached T
	if c.Get(key, &cached) {
		return cached, true, nil
	}

	val, err := loader()
	if err != nil {
		var zero T
		return zero, false, err
	}

	c.Set(key, val, duration)
	return val, false, nil
}
