package pagecache

import (
	"iter"

	"github.com/djdv/go-pagecache/internal/schedule"
)

type (
	// Optimal implements Belady's offline replacement algorithm.
	// It evicts the resident page whose next request is furthest away,
	// and never admits a page that will not be requested again.
	//
	// [Optimal.LookupUpdate] must be called once per element of the
	// sequence given to [NewOptimal], in the same order.
	// Other orders are not detected, and produce arbitrary residency.
	// Concurrent access must be guarded by the caller.
	Optimal[Key comparable, Page any] struct {
		schedule *schedule.Schedule[Key]
		pages    map[Key]slot[Page]
		settings[Key]
		furthest    Key
		hasFurthest bool
		capacity,
		position int
		admissions uint64
	}
	slot[Page any] struct {
		page Page
		// admitted orders residents by admission time,
		// to break furthest key ties deterministically.
		admitted uint64
	}
)

// NewOptimal creates an [Optimal] cache for the given access sequence.
// A capacity of 0 is valid and yields a cache that never admits.
func NewOptimal[Key comparable, Page any](
	capacity int, sequence []Key, options ...Option[Key],
) (*Optimal[Key, Page], error) {
	if capacity < 0 {
		return nil, capacityError(capacity)
	}
	return &Optimal[Key, Page]{
		schedule: schedule.New(sequence),
		pages:    make(map[Key]slot[Page], capacity),
		settings: makeSettings(options),
		capacity: capacity,
	}, nil
}

// LookupUpdate consumes the next position of the sequence, which must be key.
// It reports whether key was resident. Otherwise it calls fetch, and admits
// the page if it will be requested again sooner than the furthest resident page.
// If fetch returns an error, it is returned and the position is not consumed.
func (c *Optimal[Key, Page]) LookupUpdate(key Key, fetch Fetcher[Key, Page]) (bool, error) {
	if _, hit := c.pages[key]; hit {
		c.position++
		c.hit(key)
		c.check()
		return true, nil
	}
	c.emit(OpMiss, key, len(c.pages))
	page, err := fetch(key)
	if err != nil {
		return false, err
	}
	c.position++
	c.miss(key, page)
	c.check()
	return false, nil
}

func (c *Optimal[Key, Page]) hit(key Key) {
	c.emit(OpHit, key, len(c.pages))
	next, scheduled := c.schedule.Consume(key)
	if !scheduled {
		c.remove(key)
		c.emit(OpRetire, key, len(c.pages))
		return
	}
	if c.outlasts(next, c.pages[key].admitted) {
		c.furthest = key
	}
}

func (c *Optimal[Key, Page]) miss(key Key, page Page) {
	next, scheduled := c.schedule.Consume(key)
	if !scheduled || c.capacity == 0 {
		c.emit(OpBypass, key, len(c.pages))
		return
	}
	if c.Full() {
		if next > c.furthestNext() {
			c.emit(OpBypass, key, len(c.pages))
			return
		}
		victim := c.furthest
		c.remove(victim)
		c.emit(OpEvict, victim, len(c.pages))
	}
	c.admit(key, page, next)
}

func (c *Optimal[Key, Page]) admit(key Key, page Page, next int) {
	c.admissions++
	c.pages[key] = slot[Page]{page: page, admitted: c.admissions}
	if c.outlasts(next, c.admissions) {
		c.furthest, c.hasFurthest = key, true
	}
	c.emit(OpAdmit, key, len(c.pages))
}

// remove drops a resident key, recomputing
// the furthest key if it was the one removed.
func (c *Optimal[Key, Page]) remove(key Key) {
	delete(c.pages, key)
	if key == c.furthest {
		c.furthest, c.hasFurthest = c.rescan()
	}
}

// outlasts reports whether a resident with the given next position
// and admission order should replace the current furthest key.
func (c *Optimal[_, _]) outlasts(next int, admitted uint64) bool {
	if !c.hasFurthest {
		return true
	}
	return further(next, admitted,
		c.furthestNext(), c.pages[c.furthest].admitted)
}

// further orders residents by next position, then by admission.
// Each position names exactly one key, so resident keys never
// share a next position; if they somehow do, the earliest admission wins.
func further(next int, admitted uint64, otherNext int, otherAdmitted uint64) bool {
	return next > otherNext ||
		(next == otherNext && admitted < otherAdmitted)
}

// rescan finds the resident key that is [further] than all others.
func (c *Optimal[Key, _]) rescan() (Key, bool) {
	var (
		furthest     Key
		bestAdmitted uint64
		bestNext     = -1
	)
	for key, resident := range c.pages {
		next, ok := c.schedule.Next(key)
		if !ok {
			continue
		}
		if further(next, resident.admitted, bestNext, bestAdmitted) {
			furthest, bestNext, bestAdmitted = key, next, resident.admitted
		}
	}
	return furthest, bestNext >= 0
}

func (c *Optimal[_, _]) furthestNext() int {
	if !c.hasFurthest {
		return -1
	}
	next, _ := c.schedule.Next(c.furthest)
	return next
}

// Contains reports whether key is resident.
func (c *Optimal[Key, _]) Contains(key Key) bool {
	_, ok := c.pages[key]
	return ok
}

// Peek returns the page for key if it is resident,
// without consuming a position.
func (c *Optimal[Key, Page]) Peek(key Key) (Page, bool) {
	if slot, ok := c.pages[key]; ok {
		return slot.page, true
	}
	var zero Page
	return zero, false
}

// NextUse returns the next position at which key is requested,
// if the key is still scheduled.
func (c *Optimal[Key, _]) NextUse(key Key) (int, bool) {
	return c.schedule.Next(key)
}

// Victim returns the resident key that would be evicted
// by a miss on a full cache.
func (c *Optimal[Key, _]) Victim() (Key, bool) {
	return c.furthest, c.hasFurthest
}

// Position returns the number of sequence positions consumed so far.
func (c *Optimal[_, _]) Position() int {
	return c.position
}

// Full reports whether the resident count equals the capacity.
func (c *Optimal[_, _]) Full() bool {
	return len(c.pages) == c.capacity
}

// Len returns the number of resident pages.
func (c *Optimal[_, _]) Len() int {
	return len(c.pages)
}

// Capacity returns the capacity the cache was created with.
func (c *Optimal[_, _]) Capacity() int {
	return c.capacity
}

// Keys returns an iterator over the (unordered) keys of resident pages.
func (c *Optimal[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for key := range c.pages {
			if !yield(key) {
				return
			}
		}
	}
}
