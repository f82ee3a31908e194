// Package anneal finds a short closed tour over a fixed set of 2-D points
// using simulated annealing.
//
// 🚀 What is inside?
//
//	The optimizer is split into four small pieces that compose into one loop:
//	  • Model     — city coordinates and the current visiting order (a permutation)
//	  • Evaluator — total Euclidean length of a tour, closing edge included
//	  • Reverse   — 2-opt style neighbor: reverse the positions between two cut points
//	  • Annealer  — propose → score → accept/reject → cool, until cold or exhausted
//
// ✨ Key properties:
//   - Every tour handed out is a permutation of 0..N-1.
//   - Downhill (or equal) candidates are always accepted; uphill ones with
//     probability exp((e_cur − e_new)/t).
//   - Temperature follows t = 0.1·TMax/k, recomputed from TMax each step.
//   - The loop stops when t ≤ TMin or k ≥ KMax, whichever comes first.
//   - Randomness comes from a pluggable Source; a seeded *rand.Rand makes runs
//     reproducible.
//
// ⚙️ Usage:
//
//	cities := []anneal.City{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
//	opts := anneal.DefaultOptions()
//	opts.Seed = 42
//
//	res, err := anneal.Minimize(cities, opts)
//	if err != nil {
//	  // errors.Is(err, anneal.ErrInvalidInput)
//	}
//	fmt.Println(res.Distance, res.Iterations, res.Tour)
//
// Concurrency:
//
//	A single run is strictly sequential. Independent runs share nothing and may
//	be executed concurrently as long as each has its own Source (see DeriveSource).
package anneal
