// Package baseline adapts established replacement policies
// to the [pagecache.Engine] contract, so they can be measured
// against the same traces as the LFU and optimal engines.
package baseline

import (
	"github.com/hashicorp/golang-lru/arc/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/djdv/go-pagecache"
)

type (
	// store is the subset of the golang-lru caches used here.
	store[Key comparable, Page any] interface {
		Get(Key) (Page, bool)
		Contains(Key) bool
		Len() int
	}
	// Cache wraps a golang-lru cache.
	// A zero capacity Cache never admits.
	Cache[Key comparable, Page any] struct {
		store    store[Key, Page]
		add      func(Key, Page)
		capacity int
	}
)

var (
	_ pagecache.Engine[int, int] = (*Cache[int, int])(nil)
)

// NewLRU returns a least recently used cache.
func NewLRU[Key comparable, Page any](capacity int) (*Cache[Key, Page], error) {
	if capacity == 0 {
		return &Cache[Key, Page]{}, nil
	}
	cache, err := lru.New[Key, Page](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache[Key, Page]{
		store:    cache,
		add:      func(key Key, page Page) { cache.Add(key, page) },
		capacity: capacity,
	}, nil
}

// NewARC returns an adaptive replacement cache.
func NewARC[Key comparable, Page any](capacity int) (*Cache[Key, Page], error) {
	if capacity == 0 {
		return &Cache[Key, Page]{}, nil
	}
	cache, err := arc.NewARC[Key, Page](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache[Key, Page]{
		store:    cache,
		add:      cache.Add,
		capacity: capacity,
	}, nil
}

// LookupUpdate reports whether key was resident,
// fetching and adding the page otherwise.
func (c *Cache[Key, Page]) LookupUpdate(key Key, fetch pagecache.Fetcher[Key, Page]) (bool, error) {
	if c.store != nil {
		if _, hit := c.store.Get(key); hit {
			return true, nil
		}
	}
	page, err := fetch(key)
	if err != nil {
		return false, err
	}
	if c.store != nil {
		c.add(key, page)
	}
	return false, nil
}

// Contains reports whether key is resident without updating recency.
func (c *Cache[Key, _]) Contains(key Key) bool {
	return c.store != nil && c.store.Contains(key)
}

// Full reports whether the resident count equals the capacity.
func (c *Cache[_, _]) Full() bool {
	return c.Len() == c.capacity
}

// Len returns the number of resident pages.
func (c *Cache[_, _]) Len() int {
	if c.store == nil {
		return 0
	}
	return c.store.Len()
}
