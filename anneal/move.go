// Package anneal - the move generator (2-opt style segment reversal).
//
// A move picks two distinct tour positions and reverses the inclusive range
// between them. Reversing part of a permutation yields a permutation, and
// applying the same move twice restores the original order.
package anneal

// Move is a pair of distinct tour positions. Either order is accepted;
// Reverse normalises it.
type Move struct {
	I int
	J int
}

// normalized returns the move with I < J.
func (m Move) normalized() Move {
	if m.I > m.J {
		return Move{I: m.J, J: m.I}
	}

	return m
}

// DrawMove picks two distinct positions uniformly from [0, n). n ≥ 2.
// Every unordered pair is equally likely.
func DrawMove(n int, rng Source) Move {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return Move{I: i, J: j}
}

// Reverse returns a new tour equal to tour with positions m.I..m.J (inclusive,
// after ordering the pair) reversed. tour itself is not modified.
// Positions must lie in [0, len(tour)).
//
// Complexity: O(n) time, O(n) space.
func Reverse(tour []int, m Move) []int {
	out := CopyTour(tour)
	m = m.normalized()

	var (
		i = m.I
		k = m.J
	)
	for i < k {
		out[i], out[k] = out[k], out[i]
		i++
		k--
	}

	return out
}

// Neighbor draws a move and applies it to tour, returning the candidate and
// the move used.
func Neighbor(tour []int, rng Source) ([]int, Move) {
	m := DrawMove(len(tour), rng)

	return Reverse(tour, m), m
}
