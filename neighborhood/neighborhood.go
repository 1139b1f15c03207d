package neighborhood

import "github.com/solverkit/allocsolver/alloc"

// Expand returns every neighbor of state reachable by a single ±step move
// on one category, in alloc.Categories order. For each category it always
// includes the increase; it includes the decrease only if the result would
// not fall below that category's floor. Ordering is deterministic so astar's
// priority queue, which tie-breaks on insertion order, gets reproducible
// results.
//
// Complexity: O(len(alloc.Categories)) time and allocation.
func Expand(state alloc.State, floors alloc.Floors, step int) []alloc.State {
	neighbors := make([]alloc.State, 0, 2*len(alloc.Categories))

	for _, c := range alloc.Categories {
		neighbors = append(neighbors, state.Add(c, step))

		if state.Get(c)-step >= floors.Get(c) {
			neighbors = append(neighbors, state.Add(c, -step))
		}
	}

	return neighbors
}
