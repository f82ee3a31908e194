// Package anneal - validation run before any iteration.
//
// Every check here is O(n) or O(1), side-effect free, and reports one of the
// sentinels from types.go. Nothing inside the annealing loop can fail.
package anneal

import "math"

// ValidateCities requires n ≥ 2 and finite coordinates.
//
// Errors: ErrTooFewCities, ErrMalformedCity.
func ValidateCities(cities []City) error {
	if len(cities) < 2 {
		return ErrTooFewCities
	}
	for _, c := range cities {
		if !finite(c.X) || !finite(c.Y) {
			return ErrMalformedCity
		}
	}

	return nil
}

// ValidateOptions checks TMax > 0, 0 < TMin < TMax (all finite) and KMax > 0.
// Seed, Rand and Observer are not inspected.
//
// Errors: ErrTemperatureRange, ErrIterationLimit.
func ValidateOptions(opts Options) error {
	// !(x > 0) also rejects NaN.
	if !(opts.TMax > 0) || math.IsInf(opts.TMax, 0) {
		return ErrTemperatureRange
	}
	if !(opts.TMin > 0) || opts.TMin >= opts.TMax {
		return ErrTemperatureRange
	}
	if opts.KMax <= 0 {
		return ErrIterationLimit
	}

	return nil
}

// ValidatePermutation reports ErrInvalidTour unless tour holds each of
// 0..n-1 exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
