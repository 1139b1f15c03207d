// Package greedy implements the deterministic, priority-ordered local
// adjuster: each iteration performs at most one floor repair, overspend
// repair, savings-target chase, or slack-absorption move, in that priority
// order, until no rule fires or MaxIterations is reached.
//
// Unlike astar and annealing, greedy never calls scorer.Penalty — spec
// calls this out explicitly ("greedy does not call the scorer but enforces
// the same rule procedurally") — so its rules are coded directly against
// alloc.State and alloc.Floors.
package greedy
