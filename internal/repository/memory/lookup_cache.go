package memory

import (
	"maverik-copilot-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// LookupCache memoises catalog rows. Catalogs are seeded once and never change,
// so entries do not expire.
type LookupCache struct {
	cache *cache.Cache
}

func NewLookupCache() *LookupCache {
	return &LookupCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *LookupCache) Get(catalog string) ([]*entity.Lookup, bool) {
	if x, found := c.cache.Get(catalog); found {
		return x.([]*entity.Lookup), true
	}
	return nil, false
}

func (c *LookupCache) Set(catalog string, rows []*entity.Lookup) {
	c.cache.Set(catalog, rows, cache.NoExpiration)
}

func (c *LookupCache) Flush() {
	c.cache.Flush()
}
