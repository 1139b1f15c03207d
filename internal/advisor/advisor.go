package advisor

import (
	"fmt"
	"sort"

	"github.com/solverkit/allocsolver/alloc"
)

// Recommend builds directional advice for state given income and target
// savings. It never returns a final numeric state: only which categories to
// push, and which way, ordered cheapest-to-cut first per
// alloc.EffortWeights.
func Recommend(state alloc.State, income int, target int) Advice {
	var directions []string

	if target > 0 && state.Get(alloc.Tabungan) < target {
		directions = append(directions, "increase tabungan toward the savings target")
	}

	over := overCategories(state)
	for _, c := range over {
		directions = append(directions, fmt.Sprintf("reduce spending on %s", c))
	}

	if len(directions) == 0 {
		return Advice{
			Directions: nil,
			Note:       "allocation already looks reasonable; no specific changes suggested",
		}
	}

	return Advice{
		Directions: directions,
		Note:       "these are directions, not final numbers; re-run the solver once applied",
	}
}

// overCategories lists every category over its alloc.ReasonableMax, ordered
// by ascending alloc.EffortWeights so the easiest cuts are suggested first.
func overCategories(state alloc.State) []alloc.Category {
	var over []alloc.Category
	for _, c := range alloc.Categories {
		if c == alloc.Tabungan {
			continue
		}
		max, ok := alloc.ReasonableMax[c]
		if !ok {
			continue
		}
		if state.Get(c) > max {
			over = append(over, c)
		}
	}
	sort.SliceStable(over, func(i, j int) bool {
		return alloc.EffortWeights[over[i]] < alloc.EffortWeights[over[j]]
	})
	return over
}
