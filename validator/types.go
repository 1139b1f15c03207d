package validator

import "github.com/solverkit/allocsolver/alloc"

// Status reports whether Repair had to touch the input state.
type Status int

const (
	// StatusSuccess means the input was already valid; Notes is empty.
	StatusSuccess Status = iota
	// StatusWarning means one or more repair steps fired; Notes explains
	// each one. The returned FinalState is still a valid, usable result.
	StatusWarning
)

// String renders Status the way it appears in JSON responses and logs.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Result is Repair's outcome: the repaired state, what was changed, and
// whether anything needed changing at all.
type Result struct {
	FinalState alloc.State
	Status     Status
	Notes      []string
}
