// Package annealing implements the simulated-annealing refinement engine:
// a geometrically-cooled, single-category random-walk proposal with
// scorer.SAWeights-calibrated acceptance, tracking the best-ever state seen
// rather than returning the walk's final position.
//
// Seeding follows a simple convention: Solve accepts an int64 seed (0 maps
// to a fixed default stream, never "no randomness"), and
// degrades to a deterministic alternating +1/-1 proposal direction with
// round-robin categories when Options.DeterministicFallback is set; the
// acceptance test for worsening moves still draws from the seeded stream.
package annealing
