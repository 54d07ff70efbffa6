package ports

import "time"

// CachePort fronts the read-through user cache. Lookups by id go through
// it before the repository.
type CachePort interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}
