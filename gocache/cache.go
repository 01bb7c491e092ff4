// Package gocache implements in-memory content caching backed by patrickmn/go-cache.
package gocache

import (
	"time"

	"github.com/fwojciec/troubledoc"
	cache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long parsed content stays servable from the cache.
const DefaultTTL = 12 * time.Hour

// Compile-time check that Cache implements troubledoc.ContentCache
var _ troubledoc.ContentCache = (*Cache)(nil)

// Cache stores parsed documentation content keyed by source URL, with a
// per-entry TTL. Expired entries are never served; they are evicted lazily
// on read rather than by a background janitor.
type Cache struct {
	ttl   time.Duration
	store *cache.Cache
}

// Option configures the Cache.
type Option func(*Cache)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// NewCache creates a content cache with the given options.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		ttl: DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	// Cleanup interval 0 disables the janitor goroutine; Get still
	// refuses entries past their expiry.
	c.store = cache.New(c.ttl, 0)
	return c
}

// Get returns the content cached for url, if present and not expired.
func (c *Cache) Get(url string) (*troubledoc.Content, bool) {
	v, ok := c.store.Get(url)
	if !ok {
		return nil, false
	}
	content, ok := v.(*troubledoc.Content)
	if !ok {
		return nil, false
	}
	return content, true
}

// Put stores content under url, replacing any previous entry and
// restarting its TTL.
func (c *Cache) Put(url string, content *troubledoc.Content) {
	c.store.SetDefault(url, content)
}
