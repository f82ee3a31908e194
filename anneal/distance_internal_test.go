package anneal

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ring places n cities on a unit circle in index order.
func ring(n int) []City {
	out := make([]City, n)
	for i := range out {
		th := 2 * math.Pi * float64(i) / float64(n)
		out[i] = City{X: math.Cos(th), Y: math.Sin(th)}
	}

	return out
}

func identity(n int) []int {
	tour := make([]int, n)
	for i := range tour {
		tour[i] = i
	}

	return tour
}

// allocatedBytes reports the bytes allocated while f runs.
func allocatedBytes(f func()) uint64 {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	f()
	runtime.ReadMemStats(&after)

	return after.TotalAlloc - before.TotalAlloc
}

// TestEvaluator_TableOnlyUpToMaxPrefetch checks where the dense table stops.
func TestEvaluator_TableOnlyUpToMaxPrefetch(t *testing.T) {
	small := NewEvaluator(ring(maxPrefetch))
	assert.Len(t, small.w, maxPrefetch*maxPrefetch)

	large := NewEvaluator(ring(maxPrefetch + 1))
	assert.Nil(t, large.w)
	assert.Equal(t, maxPrefetch+1, large.N())
}

// TestEvaluator_OnDemandMatchesTable compares both paths on the same cities.
func TestEvaluator_OnDemandMatchesTable(t *testing.T) {
	cities := ring(50)
	table := NewEvaluator(cities)
	direct := &Evaluator{n: len(cities), cities: cities}

	tour := randomPermutation(len(cities), NewSource(7))
	assert.InDelta(t, table.Length(tour), direct.Length(tour), 1e-9)
	for _, p := range [][2]int{{0, 1}, {3, 40}, {49, 0}, {7, 7}} {
		assert.Equal(t, table.Distance(p[0], p[1]), direct.Distance(p[0], p[1]))
	}
}

// TestLargeInput_ScoresWithoutQuadraticMemory scores a 20k-city tour through
// every entry point; a dense table would need about 3 GiB.
func TestLargeInput_ScoresWithoutQuadraticMemory(t *testing.T) {
	const n = 20000
	const budget = 16 << 20
	cities := ring(n)
	tour := identity(n)
	want := 2 * float64(n) * math.Sin(math.Pi/float64(n))

	m, err := NewModel(cities, NewSource(1))
	require.NoError(t, err)
	require.NoError(t, m.Replace(tour))

	var got float64
	assert.Less(t, allocatedBytes(func() { got = m.Length() }), uint64(budget))
	assert.InDelta(t, want, got, 1e-6)

	assert.Less(t, allocatedBytes(func() { got, err = TourLength(cities, tour) }), uint64(budget))
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-6)

	var ev *Evaluator
	assert.Less(t, allocatedBytes(func() { ev = NewEvaluator(cities) }), uint64(budget))
	assert.InDelta(t, want, ev.Length(tour), 1e-6)
}

// TestLargeInput_Minimize runs a short annealing pass above maxPrefetch.
func TestLargeInput_Minimize(t *testing.T) {
	const n = maxPrefetch * 2
	m, err := NewModel(ring(n), NewSource(3))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.KMax = 2000
	res, err := m.Minimize(opts)
	require.NoError(t, err)
	assert.Equal(t, opts.KMax, res.Iterations)
	assert.InDelta(t, m.Length(), res.Distance, 1e-6)
	assert.Len(t, res.Tour, n)
}
