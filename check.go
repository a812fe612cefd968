package pagecache

// check walks every index of the LFU engine and panics on
// the first inconsistency. It only runs under the pagecache_debug tag.
func (c *LFU[Key, Page]) check() {
	if !debugging {
		return
	}
	assert(len(c.index) <= c.capacity, "resident count exceeds capacity")
	var (
		count        int
		minFrequency int
	)
	for frequency, sentinel := range c.buckets {
		assert(!sentinel.Empty(), "empty frequency bucket persisted")
		if minFrequency == 0 || frequency < minFrequency {
			minFrequency = frequency
		}
		for e := range sentinel.Elements() {
			assert(e.Frequency == frequency, "entry linked into the wrong bucket")
			assert(c.index[e.Name] == e, "bucket entry missing from index")
			count++
		}
	}
	assert(count == len(c.index), "index and bucket counts differ")
	assert(minFrequency == c.minFrequency, "minimum frequency drifted")
}

// check validates the residency and furthest key invariants of the
// optimal engine. It only runs under the pagecache_debug tag.
func (c *Optimal[Key, Page]) check() {
	if !debugging {
		return
	}
	assert(len(c.pages) <= c.capacity, "resident count exceeds capacity")
	for key := range c.pages {
		_, scheduled := c.schedule.Next(key)
		assert(scheduled, "resident key has no future use")
	}
	want, ok := c.rescan()
	assert(ok == c.hasFurthest, "furthest key presence drifted")
	if ok {
		assert(want == c.furthest, "furthest key drifted from rescan")
	}
}
