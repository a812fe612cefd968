// Package workload generates reproducible key access sequences
// for comparing replacement engines.
package workload

import (
	"fmt"
	"math/bits"
	"math/rand"
	"slices"
)

type (
	// Pattern names an access distribution.
	Pattern string

	constError string

	generator = func(rng *rand.Rand, capacity, length int) []int
)

const (
	// Sequential cycles through a key space much larger than any cache.
	Sequential Pattern = "sequential"
	// Looping draws most accesses from a hot set the size of the cache.
	Looping Pattern = "looping"
	// Zipf draws keys with a power law skew.
	Zipf Pattern = "zipf"
	// Uniform draws keys uniformly from four times the cache capacity.
	Uniform Pattern = "uniform"
)

// ErrUnknownPattern is returned by [Generate] for unregistered patterns.
const ErrUnknownPattern = constError("unknown pattern")

func (errStr constError) Error() string { return string(errStr) }

var generators = map[Pattern]generator{
	Sequential: func(_ *rand.Rand, _, length int) []int {
		const universe = 1 << 16 // Key space large enough to force misses.
		return MakeSequential(universe, length)
	},
	Looping: func(rng *rand.Rand, capacity, length int) []int {
		const (
			universe = 8192 // Moderately larger than capacity.
			hotRatio = 0.9  // 90% of accesses hit hot set.
		)
		return MakeLooping(rng, capacity, universe, length, hotRatio)
	},
	Zipf: func(rng *rand.Rand, _, length int) []int {
		const (
			universe = 16384 // Large enough to show skew.
			skew     = 1.2
			bias     = 1.0
		)
		return MakeZipf(rng, universe, length, skew, bias)
	},
	Uniform: func(rng *rand.Rand, capacity, length int) []int {
		upperBound := max(capacity*4, 1) // Universe bigger than capacity.
		return MakeUniform(rng, upperBound, length)
	},
}

// Patterns returns the registered pattern names in sorted order.
func Patterns() []Pattern {
	patterns := make([]Pattern, 0, len(generators))
	for pattern := range generators {
		patterns = append(patterns, pattern)
	}
	slices.Sort(patterns)
	return patterns
}

// Generate returns length keys drawn from pattern,
// sized relative to capacity, using seed for reproducibility.
func Generate(pattern Pattern, capacity, length int, seed int64) ([]int, error) {
	gen, ok := generators[pattern]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
	}
	return gen(NewRNG(seed), capacity, length), nil
}

// NewRNG returns a deterministic source for the generators.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// MakeSequential returns 0, 1, ... wrapping at universe.
func MakeSequential(universe, length int) []int {
	seq := make([]int, length)
	for i := range seq {
		seq[i] = i % universe
	}
	return seq
}

// MakeLooping returns keys from a hot set of capacity keys
// with probability hotRatio, and from the rest of universe otherwise.
func MakeLooping(rng *rand.Rand, capacity, universe, length int, hotRatio float64) []int {
	var (
		seq      = make([]int, length)
		hotSize  = max(1, capacity)
		coldSize = max(1, universe-hotSize)
	)
	for i := range seq {
		if rng.Float64() < hotRatio {
			seq[i] = rng.Intn(hotSize)
		} else {
			seq[i] = hotSize + rng.Intn(coldSize)
		}
	}
	return seq
}

// MakeZipf returns keys in [0, universe) following a Zipf distribution.
func MakeZipf(rng *rand.Rand, universe, length int, skew, bias float64) []int {
	var (
		seq  = make([]int, length)
		imax = uint64(max(universe, 2) - 1)
		zipf = rand.NewZipf(rng, skew, bias, imax)
	)
	for i := range seq {
		seq[i] = int(zipf.Uint64())
	}
	return seq
}

// MakeUniform returns keys drawn uniformly from [0, upperBound).
func MakeUniform(rng *rand.Rand, upperBound, length int) []int {
	keys := make([]int, length)
	for i := range keys {
		keys[i] = rng.Intn(upperBound)
	}
	return keys
}

// NextPow2 rounds x up to a power of two.
func NextPow2(x int) int {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(x)-1)
}
