package astar

import "github.com/solverkit/allocsolver/alloc"

// Status reports whether Solve reached a zero-penalty state (Success) or
// exhausted its iteration bound first (Partial).
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
)

// DefaultMaxIterations bounds the search per spec (A*: <= 1000).
const DefaultMaxIterations = 1000

// Options configures Solve.
type Options struct {
	// MaxIterations bounds the number of frontier pops before Solve gives up
	// and returns the best node seen. Zero or negative selects
	// DefaultMaxIterations.
	MaxIterations int
}

// DefaultOptions returns the reference configuration: MaxIterations=1000.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// Result is the engine-local outcome of one Solve call, before router
// validation.
type Result struct {
	FinalState alloc.State
	Status     Status
}
