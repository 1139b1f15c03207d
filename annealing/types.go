package annealing

import "github.com/solverkit/allocsolver/alloc"

// Status is always StatusSuccess: SA is the last numeric tier and always
// returns its best-seen state, even when the objective is not fully met.
type Status string

const StatusSuccess Status = "success"

// Reference schedule constants (spec §4.5).
const (
	DefaultTStart = 1.0
	DefaultTEnd   = 0.01
	DefaultSteps  = 500
)

// Options configures Solve.
type Options struct {
	// TStart and TEnd bound the geometric cooling schedule; TStart must be
	// > TEnd > 0.
	TStart, TEnd float64
	// Steps is the number of proposal/accept iterations.
	Steps int
	// Seed drives the deterministic RNG stream (see rng.go); 0 selects a
	// fixed default stream rather than an unseeded one.
	Seed int64
	// DeterministicFallback, if true, proposes moves without the RNG:
	// directions alternate +1/-1 per spec §7's random-source-failure
	// degradation path, and categories are selected round-robin instead of
	// uniformly at random. Acceptance of a worsening move still draws from
	// the seeded RNG stream.
	DeterministicFallback bool
}

// DefaultOptions returns the reference configuration:
// TStart=1.0, TEnd=0.01, Steps=500, Seed=0.
func DefaultOptions() Options {
	return Options{TStart: DefaultTStart, TEnd: DefaultTEnd, Steps: DefaultSteps}
}

// Result is the engine-local outcome of one Solve call, before router
// validation.
type Result struct {
	FinalState alloc.State
	Status     Status
}
