package alloc

import "errors"

// Sentinel errors returned at the map-based construction boundary. Core
// engines never return these from within a solve: a missing category there
// is repaired by validator, not rejected, per the Router's "never raises on
// infeasibility" contract.
var (
	// ErrMissingCategory indicates a caller-supplied map omitted one of the
	// seven fixed categories (tabungan excluded, see StateFromMap).
	ErrMissingCategory = errors.New("alloc: missing category")

	// ErrUnknownCategory indicates a caller-supplied map contained a key
	// outside the fixed category set.
	ErrUnknownCategory = errors.New("alloc: unknown category")
)
