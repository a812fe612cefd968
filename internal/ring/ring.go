// Package ring is a specialized adaption of `container/ring`
// used as the frequency buckets of the LFU engine.
//
// A bucket is a ring headed by a sentinel element whose Metadata is unused.
// The element after the sentinel is the front (newest promotion),
// the element before it is the back (oldest promotion).
package ring

import "iter"

type (
	// A Ring is an element of a circular list, or ring.
	// Rings do not have a beginning or end; a pointer to any ring element
	// serves as reference to the entire ring. The zero value for a Ring
	// is a one-element ring with a zero Value.
	//
	// Element pointers are stable handles: unlinking a sibling,
	// or discarding the sentinel of the ring an element used to belong to,
	// never invalidates them.
	Ring[Key comparable, Value any] struct {
		next, prev *Ring[Key, Value]
		Value      Value
		Metadata[Key]
	}
	// Metadata stores the frequency state of a resident page.
	Metadata[Key comparable] struct {
		// Name is the identifier of the page this metadata is bound to.
		Name Key
		// Frequency is the number of accesses since admission,
		// and the bucket this element is linked into.
		Frequency int
	}
)

func (r *Ring[Key, Value]) init() *Ring[Key, Value] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element.
func (r *Ring[Key, Value]) Next() *Ring[Key, Value] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element.
func (r *Ring[Key, Value]) Prev() *Ring[Key, Value] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Move moves n % r.Len() elements backward (n < 0) or forward (n >= 0)
// in the ring and returns that ring element.
func (r *Ring[Key, Value]) Move(n int) *Ring[Key, Value] {
	if r.next == nil {
		return r.init()
	}
	switch {
	case n < 0:
		for ; n < 0; n++ {
			r = r.prev
		}
	case n > 0:
		for ; n > 0; n-- {
			r = r.next
		}
	}
	return r
}

// Link connects ring r with ring s such that r.Next()
// becomes s and returns the original value for r.Next().
//
// If r and s point to the same ring, linking
// them removes the elements between r and s from the ring.
// The removed elements form a subring and the result is a
// reference to that subring.
//
// If r and s point to different rings, linking
// them creates a single ring with the elements of s inserted
// after r. The result points to the element following the
// last element of s after insertion.
func (r *Ring[Key, Value]) Link(s *Ring[Key, Value]) *Ring[Key, Value] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Note: Cannot use multiple assignment because
		// evaluation order of LHS is not specified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// Unlink removes n % r.Len() elements from the ring r, starting
// at r.Next(). If n % r.Len() == 0, r remains unchanged.
// The result is the removed subring.
func (r *Ring[Key, Value]) Unlink(n int) *Ring[Key, Value] {
	if n <= 0 {
		return nil
	}
	return r.Link(r.Move(n + 1))
}

// PushFront links the single element e directly after the sentinel r.
func (r *Ring[Key, Value]) PushFront(e *Ring[Key, Value]) {
	r.Link(e.init())
}

// Remove unlinks e from whichever ring it is in
// and returns it as a one-element ring.
func Remove[Key comparable, Value any](e *Ring[Key, Value]) *Ring[Key, Value] {
	return e.Prev().Unlink(1)
}

// Front returns the element after the sentinel r,
// or nil if the ring holds only the sentinel.
func (r *Ring[Key, Value]) Front() *Ring[Key, Value] {
	if r.Empty() {
		return nil
	}
	return r.next
}

// Back returns the element before the sentinel r,
// or nil if the ring holds only the sentinel.
func (r *Ring[Key, Value]) Back() *Ring[Key, Value] {
	if r.Empty() {
		return nil
	}
	return r.prev
}

// Empty reports whether r is alone in its ring.
func (r *Ring[Key, Value]) Empty() bool {
	return r.next == nil || r.next == r
}

// Len computes the number of elements in ring r.
// It executes in time proportional to the number of elements.
func (r *Ring[Key, Value]) Len() int {
	n := 0
	if r != nil {
		n = 1
		for p := r.Next(); p != r; p = p.next {
			n++
		}
	}
	return n
}

// Elements iterates the ring from the element after the sentinel r
// to the element before it (front to back), excluding r itself.
// The behavior is undefined if the ring is modified during iteration.
func (r *Ring[Key, Value]) Elements() iter.Seq[*Ring[Key, Value]] {
	return func(yield func(*Ring[Key, Value]) bool) {
		if r == nil {
			return
		}
		for p := r.Next(); p != r; p = p.next {
			if !yield(p) {
				return
			}
		}
	}
}
