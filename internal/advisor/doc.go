// Package advisor produces directional budgeting advice when every numeric
// solver stage has failed: router falls back to this package instead of a
// final state it cannot compute.
//
// It is a deterministic stand-in for original_source/genai/fallback_solver.py's
// LLM-backed recommendation step. It never performs network I/O and never
// proposes numbers, only direction ("reduce jajan", "increase tabungan"),
// derived from alloc.EffortWeights and alloc.ReasonableMax rather than a
// language model.
package advisor
