// Package anneal - tour utilities that depend only on the index sequence.
//
// A tour here is an open permutation of length n; the edge from the last
// element back to the first is implicit.
package anneal

// CopyTour returns an independent copy of tour (nil stays nil).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// RotateToStart returns a fresh copy of tour shifted so that out[0]==start.
// ok is false when start does not occur in tour.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour []int, start int) (out []int, ok bool) {
	var (
		n     = len(tour)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, false
	}
	out = make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, true
}

// EqualCyclesEitherDirection reports whether a and b describe the same
// undirected cycle: equal up to rotation and reversal.
//
// Complexity: O(n) time, O(n) space.
func EqualCyclesEitherDirection(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	rb, ok := RotateToStart(b, a[0])
	if !ok {
		return false
	}
	var (
		n       = len(a)
		i       int
		forward = true
		reverse = true
	)
	for i = 1; i < n; i++ {
		if a[i] != rb[i] {
			forward = false
		}
		if a[i] != rb[n-i] {
			reverse = false
		}
	}

	return forward || reverse
}
