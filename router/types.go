package router

import (
	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/annealing"
	"github.com/solverkit/allocsolver/astar"
	"github.com/solverkit/allocsolver/greedy"
)

// Method identifies which engine produced (or attempted to produce) a
// TraceEntry or the final Result. String-backed so it serializes to JSON
// as-is and so trace entries compare equal to plain string literals in
// tests.
type Method string

const (
	MethodAstar              Method = "astar"
	MethodGreedy             Method = "greedy"
	MethodSimulatedAnnealing Method = "simulated_annealing"
	MethodAiRecommendation   Method = "ai_recommendation"
)

// Status is the outcome of one attempt (in a TraceEntry) or of the whole
// cascade (in a Result).
type Status string

const (
	StatusSuccess          Status = "success"
	StatusPartial          Status = "partial"
	StatusWarning          Status = "warning"
	StatusAiRecommendation Status = "ai_recommendation"
)

// TraceEntry records one engine's attempt, successful or not, in the order
// it ran.
type TraceEntry struct {
	Method     Method
	Status     Status
	FinalState *alloc.State
}

// Result is Solve's outcome: the final state, which engine produced it, a
// record of every attempt, repair notes, and — only when the cascade
// bottoms out — directional recommendations in place of numbers.
type Result struct {
	FinalState     alloc.State
	Method         Method
	Status         Status
	Trace          []TraceEntry
	Notes          []string
	Recommendation []string
}

// Options bundles each engine's own options so callers can tune individual
// stages without the cascade's signature growing per engine.
type Options struct {
	Astar     astar.Options
	Greedy    greedy.Options
	Annealing annealing.Options
}

// DefaultOptions returns each engine's own defaults.
func DefaultOptions() Options {
	return Options{
		Astar:     astar.DefaultOptions(),
		Greedy:    greedy.DefaultOptions(),
		Annealing: annealing.DefaultOptions(),
	}
}
