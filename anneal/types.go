// Package anneal - shared types, options and sentinel errors.
package anneal

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every input-validation failure. All other
// sentinels below wrap it, so errors.Is(err, ErrInvalidInput) holds for each.
var ErrInvalidInput = errors.New("anneal: invalid input")

var (
	// ErrTooFewCities is returned when fewer than two cities are supplied.
	ErrTooFewCities = fmt.Errorf("%w: at least two cities are required", ErrInvalidInput)

	// ErrMalformedCity is returned when a coordinate is NaN or ±Inf.
	ErrMalformedCity = fmt.Errorf("%w: city coordinates must be finite", ErrInvalidInput)

	// ErrTemperatureRange is returned unless 0 < TMin < TMax and both are finite.
	ErrTemperatureRange = fmt.Errorf("%w: temperatures must satisfy 0 < t_min < t_max", ErrInvalidInput)

	// ErrIterationLimit is returned when KMax ≤ 0.
	ErrIterationLimit = fmt.Errorf("%w: k_max must be positive", ErrInvalidInput)

	// ErrInvalidTour is returned when a tour is not a permutation of 0..N-1.
	ErrInvalidTour = fmt.Errorf("%w: tour is not a permutation of the cities", ErrInvalidInput)
)

// Defaults used by DefaultOptions.
const (
	DefaultTMax float64 = 1000
	DefaultTMin float64 = 0.001
	DefaultKMax int     = 1000000
)

// City is an immutable 2-D point. Cities are identified by their index in the
// slice handed to NewModel or Minimize.
type City struct {
	X float64
	Y float64
}

// Options configures one annealing run.
type Options struct {
	// TMax is the initial temperature, > 0.
	TMax float64

	// TMin is the temperature floor, 0 < TMin < TMax. The run stops once t ≤ TMin.
	TMin float64

	// KMax is the iteration cap, > 0. The run stops once k ≥ KMax.
	KMax int

	// Seed feeds the default Source when Rand is nil (0 ⇒ fixed default seed).
	Seed int64

	// Rand is an optional random source; it overrides Seed when non-nil.
	Rand Source

	// Observer, if set, receives every state produced by Step.
	// It must not retain or modify State.Tour.
	Observer func(State)
}

// DefaultOptions returns TMax=1000, TMin=0.001, KMax=1e6 and a zero seed.
func DefaultOptions() Options {
	return Options{
		TMax: DefaultTMax,
		TMin: DefaultTMin,
		KMax: DefaultKMax,
	}
}

// source returns opts.Rand, or a deterministic generator built from opts.Seed.
func (o Options) source() Source {
	if o.Rand != nil {
		return o.Rand
	}

	return NewSource(o.Seed)
}

// Result is the public outcome of one run.
type Result struct {
	// Tour is the final visiting order, a permutation of 0..N-1.
	// The closing edge back to Tour[0] is implicit.
	Tour []int

	// Distance is the total closed-cycle length of Tour.
	Distance float64

	// Iterations is the value of the iteration counter when the loop stopped.
	// The counter starts at 1, so a run that performed m steps reports m+1.
	Iterations int
}
