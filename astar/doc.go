// Package astar implements the best-first search engine of the allocation
// solver pipeline: it explores the neighborhood graph using scorer.Penalty
// as both heuristic and score (unit-cost moves, no separate g-cost), and
// returns the best-scoring state it has seen rather than a proven shortest
// path.
//
// The frontier is a min-priority queue keyed by (score, insertion order),
// implemented with container/heap — mirroring the min-PQ pattern used
// elsewhere in this codebase's graph-search lineage — where insertion order
// breaks ties deterministically without ever comparing two alloc.State
// values directly. A closed set keyed
// by each state's array value (alloc.State is already comparable and
// hashable as a fixed-size array) suppresses revisits.
package astar
