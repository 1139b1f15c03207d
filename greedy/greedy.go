package greedy

import (
	"math"

	"github.com/solverkit/allocsolver/alloc"
)

// Solve runs the deterministic priority-ordered adjustment loop of spec
// §4.4. Each iteration performs at most one move: floor repair takes
// precedence over overspend repair, which takes precedence over the
// savings-target chase (when target > 0) or slack absorption (when
// target == 0). The loop stops when no rule fires or opts.MaxIterations is
// reached.
//
// Complexity: O(opts.MaxIterations * len(alloc.Categories)) time, O(1) extra
// space beyond the evolving state.
func Solve(state0 alloc.State, income int, floors alloc.Floors, target int, step int, opts Options) Result {
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	state := state0

	for iter := 0; iter < maxIter; iter++ {
		if fixFirstFloorViolation(&state, floors, step) {
			continue
		}

		moved := false
		switch sum := state.Sum(); {
		case sum > income:
			// repairOverspend returning false means every category is
			// already at its floor: stuck, and the loop exits just below.
			moved = repairOverspend(&state, floors, step)
		case target > 0:
			moved = chaseSavings(&state, floors, income, target, step)
		default:
			moved = absorbSlack(&state, floors, income, step)
		}

		if !moved {
			break
		}
	}

	status := StatusSuccess
	if state.Sum() > income {
		status = StatusPartial
	}
	return Result{FinalState: state, Status: status}
}

// fixFirstFloorViolation raises the first (in alloc.Categories order)
// below-floor category by step and reports whether it did so.
func fixFirstFloorViolation(state *alloc.State, floors alloc.Floors, step int) bool {
	for _, c := range alloc.Categories {
		if state.Get(c) < floors.Get(c) {
			*state = state.Add(c, step)
			return true
		}
	}
	return false
}

// repairOverspend decreases the largest category that sits strictly above
// its floor by step. Returns false if every category is already at its
// floor (the adjuster is stuck and must stop).
func repairOverspend(state *alloc.State, floors alloc.Floors, step int) bool {
	c, ok := largestAboveFloor(*state, floors, -1)
	if !ok {
		return false
	}
	*state = state.Add(c, -step)
	return true
}

// chaseSavings implements the three savings-chase sub-rules of spec §4.4.3.
func chaseSavings(state *alloc.State, floors alloc.Floors, income, target, step int) bool {
	tab := state.Get(alloc.Tabungan)
	sum := state.Sum()

	switch {
	case tab < target && sum+step <= income:
		*state = state.Add(alloc.Tabungan, step)
		return true

	case tab < target:
		victim, ok := largestAboveFloor(*state, floors, alloc.Tabungan)
		if !ok {
			return false
		}
		*state = state.Add(victim, -step)
		*state = state.Add(alloc.Tabungan, step)
		return true

	case tab > target && tab-step >= floors.Get(alloc.Tabungan):
		*state = state.Add(alloc.Tabungan, -step)
		return true
	}

	return false
}

// absorbSlack raises the smallest-amount category by step when income has
// at least one step of unused headroom and there is no savings target.
func absorbSlack(state *alloc.State, floors alloc.Floors, income, step int) bool {
	if income-state.Sum() < step {
		return false
	}
	c := smallest(*state)
	*state = state.Add(c, step)
	return true
}

// largestAboveFloor returns the category with the largest current amount
// that is strictly above its own floor, skipping exclude if it is a valid
// category (pass -1 to exclude nothing). Ties favor alloc.Categories order.
func largestAboveFloor(state alloc.State, floors alloc.Floors, exclude alloc.Category) (alloc.Category, bool) {
	best := alloc.Category(-1)
	bestAmt := -1
	for _, c := range alloc.Categories {
		if c == exclude {
			continue
		}
		amt := state.Get(c)
		if amt > floors.Get(c) && amt > bestAmt {
			bestAmt = amt
			best = c
		}
	}
	return best, best != -1
}

// smallest returns the category with the smallest current amount, favoring
// alloc.Categories order on ties.
func smallest(state alloc.State) alloc.Category {
	best := alloc.Categories[0]
	bestAmt := math.MaxInt
	for _, c := range alloc.Categories {
		if amt := state.Get(c); amt < bestAmt {
			bestAmt = amt
			best = c
		}
	}
	return best
}
