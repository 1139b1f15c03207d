package router_test

import (
	"fmt"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/router"
)

// ExampleSolve runs the full cascade on a feasible input and reports which
// engine produced the result.
func ExampleSolve() {
	floors := alloc.DefaultFloors()
	res := router.Solve(floors.ToState(), 2_000_000, floors, 300_000, 50_000, router.DefaultOptions())

	fmt.Println(res.Status)
	fmt.Println(res.FinalState.Sum() <= 2_000_000)
	// Output:
	// success
	// true
}
