package pagecache

import "iter"

type (
	// Fetcher produces the page for a key that is not resident.
	Fetcher[Key comparable, Page any] = func(Key) (Page, error)

	// Engine is the contract shared by the replacement engines.
	Engine[Key comparable, Page any] interface {
		// LookupUpdate reports whether key was resident (a hit).
		// On a miss, fetch is called exactly once and the
		// page may be admitted according to the engine's policy.
		LookupUpdate(key Key, fetch Fetcher[Key, Page]) (bool, error)
		// Contains reports whether key is resident,
		// without side effects.
		Contains(key Key) bool
		// Full reports whether the resident count equals the capacity.
		Full() bool
		// Len returns the number of resident keys.
		Len() int
	}

	// Inspector is implemented by both engines
	// for read-only access to resident pages.
	Inspector[Key comparable, Page any] interface {
		Engine[Key, Page]
		Capacity() int
		Peek(key Key) (Page, bool)
		Keys() iter.Seq[Key]
	}
)

var (
	_ Inspector[int, int] = (*LFU[int, int])(nil)
	_ Inspector[int, int] = (*Optimal[int, int])(nil)
)
