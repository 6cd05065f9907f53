package common

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService is the in-process cache, used when no Redis is configured.
type CacheService struct {
	cache *cache.Cache
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	c := cache.New(defaultExpiration, cleanUpInterval)
	return &CacheService{cache: c}
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

// Get assigns the stored value to dest directly when the types match and
// falls back to a JSON round trip otherwise.
func (cs *CacheService) Get(key string, dest interface{}) bool {
	val, found := cs.cache.Get(key)
	if !found {
		return false
	}

	target := reflect.ValueOf(dest)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return false
	}
	src := reflect.ValueOf(val)
	if src.IsValid() && src.Type().AssignableTo(target.Elem().Type()) {
		target.Elem().Set(src)
		return true
	}

	data, err := json.Marshal(val)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// Close closes the cache (no-op for in-memory cache)
func (cs *CacheService) Close() error {
	return nil
}
