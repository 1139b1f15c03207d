package scorer

import "github.com/solverkit/allocsolver/alloc"

// Penalty computes h(state): the weighted sum of overspend, floor-violation,
// and savings-miss penalties, using w for calibration. target <= 0 disables
// the savings term entirely (the objective is considered satisfied by
// definition when there is nothing to save toward).
//
// Complexity: O(len(alloc.Categories)) time, O(1) space.
func Penalty(state alloc.State, income int, floors alloc.Floors, target int, w Weights) int {
	h := 0

	if sum := state.Sum(); sum > income {
		h += (sum - income) * w.WOver
	}

	for _, c := range alloc.Categories {
		if have, want := state.Get(c), floors.Get(c); have < want {
			h += (want - have) * w.WFloor
		}
	}

	if target > 0 {
		miss := target - state.Get(alloc.Tabungan)
		if miss < 0 {
			miss = -miss
		}
		h += miss * w.WSavings
	}

	return h
}
