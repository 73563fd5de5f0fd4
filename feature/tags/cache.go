package tags

import (
	"context"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/singleflight"
)

// Source lists the distinct tags in use.
type Source interface {
	Tags(ctx context.Context) ([]string, error)
}

const allKey = "all"

type entry struct {
	tags    []string
	expires time.Time
}

// Cache wraps a Source with a TTL-bound LRU. Concurrent misses share one load.
type Cache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu    sync.Mutex
	lru   *lru.Cache
	group singleflight.Group
}

// NewCache creates a cache over source. maxEntries <= 0 means no limit.
func NewCache(source Source, ttl time.Duration, maxEntries int) *Cache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &Cache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
		lru:    lru.New(maxEntries),
	}
}

// Tags returns the cached tag list, loading it from the source when absent or expired.
func (c *Cache) Tags(ctx context.Context) ([]string, error) {
	if tags, ok := c.lookup(allKey); ok {
		return tags, nil
	}

	v, err, _ := c.group.Do(allKey, func() (any, error) {
		if tags, ok := c.lookup(allKey); ok {
			return tags, nil
		}
		tags, err := c.source.Tags(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.lru.Add(allKey, entry{tags: tags, expires: c.now().Add(c.ttl)})
		c.mu.Unlock()
		return tags, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (c *Cache) lookup(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	e := v.(entry)
	if !c.now().Before(e.expires) {
		c.lru.Remove(key)
		return nil, false
	}
	return e.tags, true
}

// Invalidate drops every cached entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.lru.Clear()
	c.mu.Unlock()
}
