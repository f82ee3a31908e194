// Package anneal - the annealing scheduler.
//
// Loop (one Step):
//  1. candidate ← Neighbor(current)
//  2. e_new ← Length(candidate); e_cur is carried in State
//  3. accept if e_new ≤ e_cur, else with probability exp((e_cur − e_new)/t)
//  4. on accept: current ← candidate, e_cur ← e_new
//  5. t ← Cool(TMax, k)
//  6. k ← k + 1
//
// Run repeats Step while PhaseOf(state) == Running. Starting from k=1 the loop
// performs at most KMax−1 steps.
//
// Complexity: O(n) per step (copy + score), O(n) extra space per candidate.
package anneal

// Annealer bundles the collaborators of one run. Its fields are fixed after
// construction; all per-run progress lives in State values.
//
// An Annealer is not safe for concurrent use because its Source is not.
type Annealer struct {
	eval *Evaluator
	rng  Source
	opts Options
}

// NewAnnealer builds an Annealer. opts must already be validated; the Source
// is opts.Rand or NewSource(opts.Seed).
func NewAnnealer(eval *Evaluator, opts Options) *Annealer {
	return &Annealer{
		eval: eval,
		rng:  opts.source(),
		opts: opts,
	}
}

// Initial returns the starting state for tour: t = TMax, k = 1.
func (a *Annealer) Initial(tour []int) State {
	cur := CopyTour(tour)

	return State{
		Tour:        cur,
		Energy:      a.eval.Length(cur),
		Temperature: a.opts.TMax,
		K:           1,
	}
}

// Step performs one propose/accept/cool iteration and returns the next state.
// s is not modified; on rejection the returned state shares s.Tour.
func (a *Annealer) Step(s State) State {
	next := s

	candidate, _ := Neighbor(s.Tour, a.rng)
	eNew := a.eval.Length(candidate)
	if accept(s.Energy, eNew, s.Temperature, a.rng) {
		next.Tour = candidate
		next.Energy = eNew
	}
	next.Temperature = Cool(a.opts.TMax, s.K)
	next.K = s.K + 1

	return next
}

// Run anneals from tour until the state is Cooled or Exhausted.
func (a *Annealer) Run(tour []int) Result {
	s := a.Initial(tour)
	for PhaseOf(s, a.opts) == Running {
		s = a.Step(s)
		if a.opts.Observer != nil {
			a.opts.Observer(s)
		}
	}

	return Result{
		Tour:       CopyTour(s.Tour),
		Distance:   s.Energy,
		Iterations: s.K,
	}
}

// Minimize validates cities and opts, draws a random initial tour and anneals
// it. Nothing runs when validation fails.
//
// Errors: ErrTooFewCities, ErrMalformedCity, ErrTemperatureRange,
// ErrIterationLimit (all wrap ErrInvalidInput).
func Minimize(cities []City, opts Options) (Result, error) {
	if err := ValidateOptions(opts); err != nil {
		return Result{}, err
	}
	rng := opts.source()
	m, err := NewModel(cities, rng)
	if err != nil {
		return Result{}, err
	}
	// Share one stream between the shuffle and the loop.
	opts.Rand = rng

	return m.Minimize(opts)
}
