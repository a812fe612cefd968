package pagecache_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/djdv/go-pagecache"
)

type testCache[Key comparable, Value any] interface {
	pagecache.Inspector[Key, Value]
	Victim() (Key, bool)
}

var (
	// The 12 and 30 key traces used by the original drivers' tests.
	shortTrace = []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 4, 3, 4}
	longTrace  = []int{
		4, 2, 1, 2, 5, 4, 1, 6, 3, 2, 10, 2, 9, 2, 7,
		5, 10, 2, 6, 1, 0, 1, 2, 4, 10, 5, 9, 10, 2, 5,
	}
)

func identity[Key any](key Key) (Key, error) { return key, nil }

func newLFU[
	Key comparable, Value any,
](tb testing.TB, capacity int, options ...pagecache.Option[Key]) *pagecache.LFU[Key, Value] {
	tb.Helper()
	cache, err := pagecache.NewLFU[Key, Value](capacity, options...)
	if err != nil {
		tb.Fatal(err)
	}
	return cache
}

func newOptimal[
	Key comparable, Value any,
](tb testing.TB, capacity int, sequence []Key, options ...pagecache.Option[Key]) *pagecache.Optimal[Key, Value] {
	tb.Helper()
	cache, err := pagecache.NewOptimal[Key, Value](capacity, sequence, options...)
	if err != nil {
		tb.Fatal(err)
	}
	return cache
}

// mustLookup drives one access with the identity fetcher.
func mustLookup[
	Key comparable,
](tb testing.TB, cache pagecache.Engine[Key, Key], key Key) bool {
	tb.Helper()
	hit, err := cache.LookupUpdate(key, identity[Key])
	if err != nil {
		tb.Fatalf("unexpected error for key %v: %v", key, err)
	}
	return hit
}

// countHits drives the whole trace and returns the number of hits.
func countHits[
	Key comparable,
](tb testing.TB, cache pagecache.Engine[Key, Key], trace []Key) int {
	tb.Helper()
	var hits int
	for _, key := range trace {
		if mustLookup(tb, cache, key) {
			hits++
		}
	}
	return hits
}

func checkSize[
	Key comparable, Value any,
](
	tb testing.TB,
	cache pagecache.Engine[Key, Value],
	size int, action string,
) {
	tb.Helper()
	got := cache.Len()
	if got == size {
		return
	}
	tb.Fatalf(
		"expected cache to be specific size %s"+
			"\n\tgot: %d"+
			"\n\twant: %d",
		action, got, size)
}

func checkHits(tb testing.TB, got, want int, trace string) {
	tb.Helper()
	if got == want {
		return
	}
	tb.Fatalf(
		"unexpected hit count for %s"+
			"\n\tgot: %d"+
			"\n\twant: %d",
		trace, got, want)
}

func keysMatch[
	Key comparable,
	Value any,
](
	tb testing.TB,
	cache testCache[Key, Value],
	want []Key, msg string,
) {
	tb.Helper()
	got := cache.Keys()
	if !keysEqualUnordered(want, got) {
		tb.Fatalf(
			"%s"+
				"\n\twant: %v"+
				"\n\tgot: %v",
			msg, want, slices.Collect(got))
	}
}

func keysEqualUnordered[Key comparable](want []Key, seq iter.Seq[Key]) bool {
	counts := make(map[Key]int, len(want))
	for _, key := range want {
		counts[key]++
	}
	var seen int
	for key := range seq {
		if counts[key] == 0 {
			return false
		}
		counts[key]--
		seen++
	}
	return seen == len(want)
}

// stepTable drives trace one key at a time, calling probe after every step.
func stepTable[
	Key comparable,
](tb testing.TB, cache pagecache.Engine[Key, Key], trace []Key, probe func(step int)) {
	tb.Helper()
	for step, key := range trace {
		mustLookup(tb, cache, key)
		probe(step)
	}
}
