package mock

import (
	"github.com/fwojciec/troubledoc"
)

var _ troubledoc.ContentCache = (*ContentCache)(nil)

// ContentCache is a mock implementation of troubledoc.ContentCache.
type ContentCache struct {
	GetFn func(url string) (*troubledoc.Content, bool)
	PutFn func(url string, content *troubledoc.Content)
}

func (c *ContentCache) Get(url string) (*troubledoc.Content, bool) {
	return c.GetFn(url)
}

func (c *ContentCache) Put(url string, content *troubledoc.Content) {
	c.PutFn(url, content)
}
