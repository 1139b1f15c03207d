// Package router is the unified dispatcher for the allocation solvers: it
// tries astar, then greedy, then annealing, then a deterministic
// recommendation fallback, in that fixed order, stopping at the first
// engine that reports success.
//
// Every attempt (successful or not) is recorded as a TraceEntry so callers
// can see which engines ran and why a later one was needed. The result of
// whichever engine succeeds is always passed through validator.Repair
// before being returned.
//
// Grounded on original_source/genai/ai_router.py's AIRouter.solve cascade
// and the "validate then dispatch" dispatcher shape used elsewhere in this
// codebase's solver packages.
package router
