package annealing

import (
	"math/rand"

	"github.com/solverkit/allocsolver/alloc"
)

// proposer returns the next (category, direction) move to attempt;
// direction is always -1 or +1.
type proposer func() (alloc.Category, int)

// uniformProposer picks a uniformly random category and direction each
// call, per spec §4.5's default proposal rule.
func uniformProposer(rng *rand.Rand) proposer {
	return func() (alloc.Category, int) {
		cat := alloc.Categories[rng.Intn(len(alloc.Categories))]
		direction := 1
		if rng.Intn(2) == 0 {
			direction = -1
		}
		return cat, direction
	}
}

// roundRobinProposer implements spec §7's random-source-failure
// degradation: categories cycle in alloc.Categories order and the
// direction alternates +1, -1, +1, -1, ... starting from +1.
func roundRobinProposer() proposer {
	idx := 0
	direction := 1
	return func() (alloc.Category, int) {
		cat := alloc.Categories[idx%len(alloc.Categories)]
		d := direction
		idx++
		direction = -direction
		return cat, d
	}
}
