package anneal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/satsp/anneal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTourLength_UnitSquare checks the optimal and the crossing tour.
func TestTourLength_UnitSquare(t *testing.T) {
	got, err := anneal.TourLength(unitSquare(), []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, epsTiny)

	got, err = anneal.TourLength(unitSquare(), []int{0, 2, 1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 2+2*math.Sqrt2, got, epsTiny)
}

// TestTourLength_TwoCities counts the closing edge: there and back.
func TestTourLength_TwoCities(t *testing.T) {
	cities := []anneal.City{{X: 0, Y: 0}, {X: 3, Y: 4}}
	for _, tour := range [][]int{{0, 1}, {1, 0}} {
		got, err := anneal.TourLength(cities, tour)
		require.NoError(t, err)
		assert.Equal(t, 10.0, got)
	}
}

// TestTourLength_CoincidentPoints: all distances zero is valid.
func TestTourLength_CoincidentPoints(t *testing.T) {
	cities := []anneal.City{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}}
	got, err := anneal.TourLength(cities, []int{2, 0, 1})
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestTourLength_Errors covers city and tour validation.
func TestTourLength_Errors(t *testing.T) {
	_, err := anneal.TourLength([]anneal.City{{X: 0, Y: 0}}, []int{0})
	assert.ErrorIs(t, err, anneal.ErrTooFewCities)

	_, err = anneal.TourLength(unitSquare(), []int{0, 1, 1, 3})
	assert.ErrorIs(t, err, anneal.ErrInvalidTour)

	_, err = anneal.TourLength(unitSquare(), []int{0, 1, 2})
	assert.ErrorIs(t, err, anneal.ErrInvalidTour)
	assert.ErrorIs(t, err, anneal.ErrInvalidInput)
}

// TestEvaluator_RotationAndReversalInvariance: the cycle is undirected and
// has no distinguished start.
func TestEvaluator_RotationAndReversalInvariance(t *testing.T) {
	cities := twentyCities()
	ev := anneal.NewEvaluator(cities)
	rng := anneal.NewSource(seedDet)

	for trial := 0; trial < 25; trial++ {
		m, err := anneal.NewModel(cities, rng)
		require.NoError(t, err)
		tour := m.Tour()
		base := ev.Length(tour)

		for shift := 1; shift < len(tour); shift++ {
			rot, ok := anneal.RotateToStart(tour, tour[shift])
			require.True(t, ok)
			assert.InDelta(t, base, ev.Length(rot), epsTiny, "rotation by %d", shift)
		}

		rev := make([]int, len(tour))
		for i := range tour {
			rev[i] = tour[len(tour)-1-i]
		}
		assert.InDelta(t, base, ev.Length(rev), epsTiny, "reversal")
	}
}

// TestEvaluator_MatchesDirectSum compares the prefetched table against a
// straightforward computation.
func TestEvaluator_MatchesDirectSum(t *testing.T) {
	cities := circle(7, 3)
	ev := anneal.NewEvaluator(cities)
	require.Equal(t, 7, ev.N())

	tour := []int{3, 0, 6, 2, 5, 1, 4}
	var want float64
	for i := range tour {
		a := cities[tour[i]]
		b := cities[tour[(i+1)%len(tour)]]
		want += math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y))
	}
	assert.InDelta(t, want, ev.Length(tour), epsTiny)
	assert.Equal(t, ev.Distance(2, 5), ev.Distance(5, 2))
	assert.Zero(t, ev.Distance(4, 4))
}

// TestEvaluator_Pure: scoring does not touch the tour.
func TestEvaluator_Pure(t *testing.T) {
	ev := anneal.NewEvaluator(unitSquare())
	tour := []int{2, 0, 3, 1}
	first := ev.Length(tour)
	assert.Equal(t, []int{2, 0, 3, 1}, tour)
	assert.Equal(t, first, ev.Length(tour))
}
