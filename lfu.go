package pagecache

import (
	"iter"

	"github.com/djdv/go-pagecache/internal/ring"
)

type (
	entry[Key comparable, Page any] = ring.Ring[Key, Page]
	// LFU evicts the least frequently used page.
	// Ties are broken by evicting the page that was
	// promoted into its frequency least recently.
	// Concurrent access must be guarded by the caller.
	// Constructed by [NewLFU].
	LFU[Key comparable, Page any] struct {
		index map[Key]*entry[Key, Page]
		// buckets maps a frequency to the sentinel of its ring.
		// Only non-empty rings are present.
		buckets map[int]*entry[Key, Page]
		settings[Key]
		capacity,
		// minFrequency is 0 while no bucket exists.
		minFrequency int
	}
)

// NewLFU creates an [LFU] with the given capacity.
// A capacity of 0 is valid and yields a cache that never admits.
func NewLFU[Key comparable, Page any](capacity int, options ...Option[Key]) (*LFU[Key, Page], error) {
	if capacity < 0 {
		return nil, capacityError(capacity)
	}
	return &LFU[Key, Page]{
		index:    make(map[Key]*entry[Key, Page], capacity),
		buckets:  make(map[int]*entry[Key, Page]),
		settings: makeSettings(options),
		capacity: capacity,
	}, nil
}

// LookupUpdate reports whether key is resident, and promotes it if so.
// Otherwise it calls fetch and admits the page, evicting the
// least frequently used page first if the cache is full.
// If fetch returns an error, it is returned and the cache is unchanged.
func (c *LFU[Key, Page]) LookupUpdate(key Key, fetch Fetcher[Key, Page]) (bool, error) {
	if e, hit := c.index[key]; hit {
		c.promote(e)
		c.emit(OpHit, key, len(c.index))
		c.check()
		return true, nil
	}
	c.emit(OpMiss, key, len(c.index))
	page, err := fetch(key)
	if err != nil {
		return false, err
	}
	if c.capacity == 0 {
		c.emit(OpBypass, key, 0)
		return false, nil
	}
	if c.Full() {
		c.evict()
	}
	c.admit(key, page)
	c.check()
	return false, nil
}

// promote moves e from its bucket to the front of the next one.
func (c *LFU[Key, Page]) promote(e *entry[Key, Page]) {
	from := e.Frequency
	if c.unlink(e) && c.minFrequency == from {
		// Nothing can exist below the bucket that was just
		// emptied, and e is about to occupy from+1.
		c.minFrequency = from + 1
	}
	e.Frequency++
	c.link(e)
}

// evict removes the oldest page of the minimum frequency bucket.
func (c *LFU[Key, Page]) evict() {
	sentinel := c.buckets[c.minFrequency]
	if debugging {
		assert(sentinel != nil, "minimum frequency has no bucket")
	}
	victim := sentinel.Back()
	if c.unlink(victim) {
		// Only valid because a frequency 1 admission always follows.
		c.minFrequency = 0
	}
	delete(c.index, victim.Name)
	c.emit(OpEvict, victim.Name, len(c.index))
}

func (c *LFU[Key, Page]) admit(key Key, page Page) {
	const initialFrequency = 1
	e := &entry[Key, Page]{
		Metadata: ring.Metadata[Key]{
			Name:      key,
			Frequency: initialFrequency,
		},
		Value: page,
	}
	c.index[key] = e
	c.link(e)
	c.minFrequency = initialFrequency
	c.emit(OpAdmit, key, len(c.index))
}

// link pushes e to the front of the bucket for its frequency,
// creating the bucket if needed.
func (c *LFU[Key, Page]) link(e *entry[Key, Page]) {
	sentinel, ok := c.buckets[e.Frequency]
	if !ok {
		sentinel = new(entry[Key, Page])
		c.buckets[e.Frequency] = sentinel
	}
	sentinel.PushFront(e)
}

// unlink removes e from its bucket and reports
// whether the bucket was deleted because it became empty.
func (c *LFU[Key, Page]) unlink(e *entry[Key, Page]) bool {
	ring.Remove(e)
	if sentinel := c.buckets[e.Frequency]; sentinel.Empty() {
		delete(c.buckets, e.Frequency)
		return true
	}
	return false
}

// Contains reports whether key is resident.
func (c *LFU[Key, _]) Contains(key Key) bool {
	_, ok := c.index[key]
	return ok
}

// Peek returns the page for key if it is resident,
// without counting as an access.
func (c *LFU[Key, Page]) Peek(key Key) (Page, bool) {
	if e, ok := c.index[key]; ok {
		return e.Value, true
	}
	var zero Page
	return zero, false
}

// Frequency returns the access count of a resident key.
// The count is 1 on admission and grows by 1 per hit.
func (c *LFU[Key, _]) Frequency(key Key) (int, bool) {
	if e, ok := c.index[key]; ok {
		return e.Frequency, true
	}
	return 0, false
}

// Victim returns the key that would be evicted
// by the next miss on a full cache.
func (c *LFU[Key, _]) Victim() (Key, bool) {
	if sentinel, ok := c.buckets[c.minFrequency]; ok {
		return sentinel.Back().Name, true
	}
	var zero Key
	return zero, false
}

// Full reports whether the resident count equals the capacity.
func (c *LFU[_, _]) Full() bool {
	return len(c.index) == c.capacity
}

// Len returns the number of resident pages.
func (c *LFU[_, _]) Len() int {
	return len(c.index)
}

// Capacity returns the capacity the cache was created with.
func (c *LFU[_, _]) Capacity() int {
	return c.capacity
}

// Keys returns an iterator over the (unordered) keys of resident pages.
func (c *LFU[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for key := range c.index {
			if !yield(key) {
				return
			}
		}
	}
}
