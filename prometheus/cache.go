package prometheus

import (
	"github.com/fwojciec/troubledoc"
)

// Ensure MetricsCache implements troubledoc.ContentCache.
var _ troubledoc.ContentCache = (*MetricsCache)(nil)

// MetricsCache wraps a ContentCache and counts hits and misses.
type MetricsCache struct {
	next troubledoc.ContentCache
}

// NewMetricsCache creates a new MetricsCache.
func NewMetricsCache(next troubledoc.ContentCache) *MetricsCache {
	return &MetricsCache{next: next}
}

// Get delegates to the wrapped cache, counting the outcome.
func (c *MetricsCache) Get(url string) (*troubledoc.Content, bool) {
	content, ok := c.next.Get(url)
	if ok {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
	return content, ok
}

// Put delegates to the wrapped cache.
func (c *MetricsCache) Put(url string, content *troubledoc.Content) {
	c.next.Put(url, content)
}
