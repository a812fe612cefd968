// Package observe combines [pagecache.Observer]s.
package observe

import "github.com/djdv/go-pagecache"

// Multi forwards each event to every observer, in order.
type Multi[Key comparable] []pagecache.Observer[Key]

// Compile-time check that Multi implements pagecache.Observer.
var _ pagecache.Observer[int] = Multi[int](nil)

func (m Multi[Key]) Observe(event pagecache.Event[Key]) {
	for _, observer := range m {
		observer.Observe(event)
	}
}
