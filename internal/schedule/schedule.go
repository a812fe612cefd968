// Package schedule tracks, for every key of a known access sequence,
// the positions at which it will be requested again.
package schedule

// Schedule holds the unconsumed future positions of each key.
// Keys that occur once in the sequence are never tracked.
type Schedule[Key comparable] struct {
	// queues holds ascending positions;
	// the front is the key's next (or current) request.
	queues map[Key][]int
}

// New indexes sequence. Position i refers to sequence[i].
func New[Key comparable](sequence []Key) *Schedule[Key] {
	queues := make(map[Key][]int)
	for position, key := range sequence {
		queues[key] = append(queues[key], position)
	}
	for key, positions := range queues {
		if len(positions) == 1 {
			delete(queues, key)
		}
	}
	return &Schedule[Key]{queues: queues}
}

// Next returns the front position of key's queue.
func (s *Schedule[Key]) Next(key Key) (int, bool) {
	positions, ok := s.queues[key]
	if !ok {
		return 0, false
	}
	return positions[0], true
}

// Consume drops the front position of key's queue and returns the new front.
// A key whose queue becomes empty stops being tracked, and false is returned.
// Consuming an untracked key is a no-op that returns false.
func (s *Schedule[Key]) Consume(key Key) (int, bool) {
	positions, ok := s.queues[key]
	if !ok {
		return 0, false
	}
	if positions = positions[1:]; len(positions) == 0 {
		delete(s.queues, key)
		return 0, false
	}
	s.queues[key] = positions
	return positions[0], true
}

// Tracked reports whether key has unconsumed positions.
func (s *Schedule[Key]) Tracked(key Key) bool {
	_, ok := s.queues[key]
	return ok
}

// Len returns the number of tracked keys.
func (s *Schedule[Key]) Len() int {
	return len(s.queues)
}
