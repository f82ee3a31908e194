// Package anneal_test holds helpers shared across the *_test.go files of
// this package.
package anneal_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/satsp/anneal"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the fixed seed used wherever a test needs reproducible draws.
	seedDet = int64(42)

	// epsTiny is the tolerance for comparing lengths built from the same terms.
	epsTiny = 1e-9
)

// unitSquare returns the corners of the unit square, optimal tour length 4.
func unitSquare() []anneal.City {
	return []anneal.City{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
}

// twentyCities is the fixed 20-point instance used by the command-line driver.
func twentyCities() []anneal.City {
	pts := [][2]float64{
		{0, 0}, {1, 5}, {2, 2}, {3, 3}, {4, 1},
		{5, 5}, {6, 3}, {7, 2}, {8, 4}, {9, 0},
		{1, 1}, {2, 3}, {3, 5}, {4, 0}, {5, 2},
		{6, 1}, {7, 4}, {8, 2}, {9, 5}, {0, 4},
	}
	out := make([]anneal.City, len(pts))
	for i, p := range pts {
		out[i] = anneal.City{X: p[0], Y: p[1]}
	}

	return out
}

// circle places n cities evenly on a circle of radius r; the optimal tour
// visits them in index order.
func circle(n int, r float64) []anneal.City {
	out := make([]anneal.City, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		out[i] = anneal.City{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return out
}

// requirePermutation fails unless tour holds each of 0..n-1 exactly once.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.Len(t, tour, n)
	sorted := append([]int(nil), tour...)
	sort.Ints(sorted)
	for i := 0; i < n; i++ {
		require.Equal(t, i, sorted[i], "tour %v is not a permutation of 0..%d", tour, n-1)
	}
}

// scriptedSource replays fixed Intn results and a constant Float64, and
// counts Float64 calls.
type scriptedSource struct {
	ints   []int
	next   int
	float  float64
	floats int
}

var _ anneal.Source = (*scriptedSource)(nil)

func (s *scriptedSource) Intn(n int) int {
	v := s.ints[s.next%len(s.ints)]
	s.next++

	return v % n
}

func (s *scriptedSource) Float64() float64 {
	s.floats++

	return s.float
}
