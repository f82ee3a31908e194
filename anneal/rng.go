// Package anneal - random sources used by the shuffle and the move generator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a Source between runs
//     executing concurrently; derive one per run with DeriveSource.
package anneal

import "math/rand"

// Source is the randomness the optimizer consumes. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n). n > 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// NewSource returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mixSeed combines a parent seed and a stream id with a SplitMix64 finalizer,
// so neighbouring stream ids yield uncorrelated seeds.
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveSource creates an independent deterministic stream from base and a
// stream identifier. base==nil uses defaultSeed as the parent; otherwise one
// Int63 is consumed from base. Call it during setup, not inside hot loops.
func DeriveSource(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// shuffleInPlace is a Fisher–Yates shuffle: every permutation is equally likely.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng Source) {
	var (
		i int
		j int
	)
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomPermutation returns a uniformly random permutation of 0..n-1.
func randomPermutation(n int, rng Source) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleInPlace(p, rng)

	return p
}
