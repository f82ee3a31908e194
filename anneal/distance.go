// Package anneal - the distance evaluator.
//
// Tour length is the sum of Euclidean distances between consecutive cities in
// tour order plus the closing edge from the last city back to the first:
//
//	total = Σ_{i=0}^{n-2} d(o[i], o[i+1]) + d(o[n-1], o[0])
//
// Up to maxPrefetch cities the distances are prefetched once into a dense n×n
// table so that scoring a candidate costs n lookups and no square roots.
// Larger inputs compute each distance on demand in O(1) extra memory.
package anneal

import "math"

// maxPrefetch is the largest city count for which NewEvaluator builds the
// n×n table (2048² float64 ≈ 32 MiB).
const maxPrefetch = 2048

// Evaluator scores tours over a fixed city set. It is immutable after
// construction and safe for concurrent use.
type Evaluator struct {
	n      int
	cities []City
	w      []float64 // w[i*n+j] = euclid(i, j); nil when n > maxPrefetch
}

// NewEvaluator copies cities and, for n ≤ maxPrefetch, precomputes all
// pairwise distances. Callers validate cities first (see NewModel / Minimize).
//
// Complexity: O(n²) time and space up to maxPrefetch, O(n) above it.
func NewEvaluator(cities []City) *Evaluator {
	n := len(cities)
	cp := make([]City, n)
	copy(cp, cities)
	e := &Evaluator{n: n, cities: cp}
	if n > maxPrefetch {
		return e
	}

	w := make([]float64, n*n)
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = euclid(cp[i], cp[j])
			w[i*n+j] = d
			w[j*n+i] = d
		}
	}
	e.w = w

	return e
}

// N returns the number of cities the evaluator was built for.
func (e *Evaluator) N() int { return e.n }

// Distance returns the Euclidean distance between cities u and v.
func (e *Evaluator) Distance(u, v int) float64 {
	if e.w == nil {
		return euclid(e.cities[u], e.cities[v])
	}

	return e.w[u*e.n+v]
}

// Length returns the closed-cycle length of tour, which must be a permutation
// of 0..N-1. It is a pure function of tour.
//
// Complexity: O(n).
func (e *Evaluator) Length(tour []int) float64 {
	if e.w == nil {
		return cycleLength(e.cities, tour)
	}

	var (
		n   = len(tour)
		sum float64
		i   int
	)
	if n == 0 {
		return 0
	}
	for i = 0; i < n-1; i++ {
		sum += e.w[tour[i]*e.n+tour[i+1]]
	}
	sum += e.w[tour[n-1]*e.n+tour[0]] // closing edge

	return sum
}

// TourLength validates cities and tour, then returns the closed-cycle length.
// No distance table is built.
//
// Errors: ErrTooFewCities, ErrMalformedCity, ErrInvalidTour.
func TourLength(cities []City, tour []int) (float64, error) {
	if err := ValidateCities(cities); err != nil {
		return 0, err
	}
	if err := ValidatePermutation(tour, len(cities)); err != nil {
		return 0, err
	}

	return cycleLength(cities, tour), nil
}

// cycleLength sums euclid along tour including the closing edge. It allocates
// nothing.
func cycleLength(cities []City, tour []int) float64 {
	n := len(tour)
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n-1; i++ {
		sum += euclid(cities[tour[i]], cities[tour[i+1]])
	}

	return sum + euclid(cities[tour[n-1]], cities[tour[0]])
}

// euclid is sqrt((xa−xb)² + (ya−yb)²).
func euclid(a, b City) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}
