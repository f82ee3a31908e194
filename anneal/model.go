// Package anneal - the tour model: fixed cities plus the current visiting order.
package anneal

// Model holds the cities and the current tour. The cities never change after
// construction; the tour is only ever replaced wholesale.
//
// A Model is not safe for concurrent use.
type Model struct {
	cities []City
	tour   []int
}

// NewModel validates cities, copies them, and draws a uniformly random
// initial tour from rng (a nil rng uses NewSource(0)).
//
// Errors: ErrTooFewCities, ErrMalformedCity.
//
// Complexity: O(n).
func NewModel(cities []City, rng Source) (*Model, error) {
	if err := ValidateCities(cities); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSource(0)
	}
	cp := make([]City, len(cities))
	copy(cp, cities)

	return &Model{
		cities: cp,
		tour:   randomPermutation(len(cp), rng),
	}, nil
}

// N returns the number of cities.
func (m *Model) N() int { return len(m.cities) }

// City returns the coordinates of city i. It panics if i is out of range,
// like a slice index would.
func (m *Model) City(i int) City { return m.cities[i] }

// Cities returns a copy of the coordinate list.
func (m *Model) Cities() []City {
	out := make([]City, len(m.cities))
	copy(out, m.cities)

	return out
}

// Tour returns a copy of the current tour.
func (m *Model) Tour() []int { return CopyTour(m.tour) }

// Replace installs tour as the current tour after checking it is a
// permutation of 0..N-1. The model keeps its own copy.
func (m *Model) Replace(tour []int) error {
	if err := ValidatePermutation(tour, len(m.cities)); err != nil {
		return err
	}
	m.tour = CopyTour(tour)

	return nil
}

// Length returns the closed-cycle length of the current tour in O(n) time
// without building a distance table.
func (m *Model) Length() float64 {
	return cycleLength(m.cities, m.tour)
}

// Minimize runs one annealing pass starting from the model's current tour and
// replaces it with the final tour, so consecutive calls keep refining the
// same solution. With opts.Rand == nil every call restarts the stream seeded
// by opts.Seed; pass a shared Source to continue one stream across calls.
func (m *Model) Minimize(opts Options) (Result, error) {
	if err := ValidateOptions(opts); err != nil {
		return Result{}, err
	}
	a := NewAnnealer(NewEvaluator(m.cities), opts)
	res := a.Run(m.tour)
	m.tour = CopyTour(res.Tour)

	return res, nil
}
