package greedy

import "github.com/solverkit/allocsolver/alloc"

// Status reports whether Solve's final state fits within income (Success)
// or is still overspending when the loop gave up (Partial).
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
)

// DefaultMaxIterations bounds the adjustment loop per spec (Greedy: <= 300).
const DefaultMaxIterations = 300

// Options configures Solve.
type Options struct {
	// MaxIterations bounds the number of at-most-one-move iterations.
	MaxIterations int
}

// DefaultOptions returns the reference configuration: MaxIterations=300.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// Result is the engine-local outcome of one Solve call, before router
// validation.
type Result struct {
	FinalState alloc.State
	Status     Status
}
