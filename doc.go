// Package pagecache implements two page replacement engines
// that share the [Engine] contract:
//
//   - [LFU] evicts the resident page with the smallest access frequency.
//     Among equal frequencies it evicts the page that was promoted
//     into that frequency least recently.
//
//   - [Optimal] implements [Belady's algorithm]. It is built from the entire
//     access sequence in advance and evicts the resident page whose next
//     request lies furthest in the future.
//
// Both engines are single-threaded data structures.
// Concurrent access must be guarded by the caller.
//
// Glossary and invariants:
//
//   - Resident
//
//     The key's page currently occupies one of the capacity slots.
//
//   - Frequency bucket (LFU)
//
//     The resident keys sharing one access count, ordered by the time they
//     were promoted into it. Newest at the front, oldest at the back.
//     A bucket exists only while it holds at least one key, so the minimum
//     frequency is always the frequency of some non-empty bucket.
//
//   - Schedule (Optimal)
//
//     For every key, the ascending positions in the sequence at which it is
//     requested and that have not been consumed yet.
//     Keys that are requested only once in the entire sequence are never
//     scheduled, and therefore never admitted.
//
//   - Furthest key (Optimal)
//
//     The resident key whose next scheduled position is the largest.
//     It is the only eviction candidate.
//
// Operations:
//
//   - Hit
//
//     LFU promotes the key into the next frequency bucket.
//     Optimal consumes the key's current position; a key with nothing left
//     in its schedule is retired (removed) immediately.
//
//   - Miss
//
//     The fetch function is called exactly once. If it fails, its error is
//     returned as is and the engine is left untouched.
//     LFU then evicts the back of the minimum bucket when full.
//     Optimal evicts the furthest key only when the missed key is needed
//     sooner; otherwise the page bypasses the cache.
//
//   - Zero capacity
//
//     A valid cache that never admits anything; every lookup is a miss.
//
// [Belady's algorithm]: https://en.wikipedia.org/wiki/Cache_replacement_policies#B%C3%A9l%C3%A1dy's_algorithm
package pagecache
