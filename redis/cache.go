package redis

import (
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Catalog reads (facilities, services) go through this cache: keys are
// "facility:<id>", "facility:list", "service:facility:<id>". Writers must
// invalidate with CacheDel.
const catalogTTL = 10 * time.Minute

// CacheGet loads a cached JSON value into dest. A miss or a decode failure
// is reported as false so callers fall back to the database.
func CacheGet(key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	data, err := Client.Get(Ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("cache get %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("cache decode %s: %v", key, err)
		return false
	}
	return true
}

// CacheSet stores a value as JSON with the catalog TTL. Failures are logged
// and ignored: the cache is best effort.
func CacheSet(key string, value interface{}) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache encode %s: %v", key, err)
		return
	}
	if err := Client.Set(Ctx, key, data, catalogTTL).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// CacheDel removes keys after a catalog write.
func CacheDel(keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}
	if err := Client.Del(Ctx, keys...).Err(); err != nil {
		log.Printf("cache del %v: %v", keys, err)
	}
}
