package astar_test

import (
	"fmt"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/astar"
)

// ExampleSolve searches for an allocation that meets every floor, stays
// within income, and reaches a savings target.
func ExampleSolve() {
	floors := alloc.DefaultFloors()
	state0 := floors.ToState()

	res := astar.Solve(state0, 3_000_000, floors, 500_000, 50_000, astar.DefaultOptions())

	fmt.Println(res.Status)
	fmt.Println(res.FinalState.Sum() <= 3_000_000)
	// Output:
	// success
	// true
}
