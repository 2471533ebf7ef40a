// Package cache is the client-side read-through query cache.
//
// Entries are keyed by (resource family, query key). Mutation success
// invalidates the whole family rather than single rows: a short staleness
// window is traded for not having to patch cached lists in place.
package cache

import (
	"sync"

	"gigmarket/internal/monitoring"
)

type Cache struct {
	mu       sync.RWMutex
	families map[string]map[string]any
	metrics  *monitoring.Metrics
}

func New(metrics *monitoring.Metrics) *Cache {
	return &Cache{
		families: make(map[string]map[string]any),
		metrics:  metrics,
	}
}

// Fetch returns the cached value for (family, key) or runs load and stores
// its result. Load errors are never cached.
func (c *Cache) Fetch(family, key string, load func() (any, error)) (any, error) {
	c.mu.RLock()
	if fam, ok := c.families[family]; ok {
		if v, ok := fam[key]; ok {
			c.mu.RUnlock()
			c.metrics.ObserveCache(family, "hit")
			return v, nil
		}
	}
	c.mu.RUnlock()

	c.metrics.ObserveCache(family, "miss")
	v, err := load()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	fam, ok := c.families[family]
	if !ok {
		fam = make(map[string]any)
		c.families[family] = fam
	}
	fam[key] = v
	c.mu.Unlock()

	return v, nil
}

// Invalidate drops every entry of the resource family.
func (c *Cache) Invalidate(family string) {
	c.mu.Lock()
	delete(c.families, family)
	c.mu.Unlock()
}

// Through is the typed read-through helper stores use.
func Through[T any](c *Cache, family, key string, load func() (T, error)) (T, error) {
	v, err := c.Fetch(family, key, func() (any, error) {
		return load()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
