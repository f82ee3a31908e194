// Package anneal - cooling, acceptance and the per-iteration state value.
package anneal

import "math"

// Phase is the scheduler state of a run.
type Phase int

const (
	// Running: t > TMin and k < KMax.
	Running Phase = iota
	// Cooled: the temperature dropped to TMin or below.
	Cooled
	// Exhausted: the iteration counter reached KMax.
	Exhausted
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Cooled:
		return "cooled"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a run between two iterations.
// Step never modifies a State it receives; it returns a new one.
type State struct {
	// Tour is the current tour. Treat it as read-only.
	Tour []int
	// Energy is the length of Tour.
	Energy float64
	// Temperature is the temperature the next iteration will use.
	Temperature float64
	// K is the 1-based iteration counter.
	K int
}

// PhaseOf classifies s against the stop conditions in opts.
// Cooled wins when both conditions hold.
func PhaseOf(s State, opts Options) Phase {
	switch {
	case s.Temperature <= opts.TMin:
		return Cooled
	case s.K >= opts.KMax:
		return Exhausted
	default:
		return Running
	}
}

// Cool returns 0.1·tMax/k. The temperature is recomputed from the initial
// tMax on every step rather than decayed from the previous value; k is the
// 1-based counter before it is incremented for the current step.
func Cool(tMax float64, k int) float64 {
	return 0.1 * tMax / float64(k)
}

// AcceptanceProbability returns exp((eCur − eNew)/t). For uphill moves
// (eNew > eCur) the result lies in (0, 1]; for downhill moves it exceeds 1.
func AcceptanceProbability(eCur, eNew, t float64) float64 {
	return math.Exp((eCur - eNew) / t)
}

// accept applies the Metropolis rule: downhill or equal is always taken
// without consuming randomness; uphill is taken when a uniform draw in
// [0,1) is ≤ the acceptance probability.
func accept(eCur, eNew, t float64, rng Source) bool {
	if eNew <= eCur {
		return true
	}

	return rng.Float64() <= AcceptanceProbability(eCur, eNew, t)
}
