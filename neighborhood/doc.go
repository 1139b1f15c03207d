// Package neighborhood enumerates the discrete moves astar searches over
// (greedy applies its own moves directly and does not use this package): for each category, in alloc.Categories order, a +step and a
// floor-respecting -step neighbor. Expand is pure and allocates a fresh
// alloc.State per neighbor; it never mutates the state passed in.
package neighborhood
