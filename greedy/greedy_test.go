package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/greedy"
)

func TestSolve_FixesFloorViolationsFirst(t *testing.T) {
	floors := alloc.DefaultFloors()
	state0 := alloc.State{} // every category below its floor, or at 0
	res := greedy.Solve(state0, 2_000_000, floors, 0, 50_000, greedy.DefaultOptions())

	for _, c := range alloc.Categories {
		require.GreaterOrEqual(t, res.FinalState.Get(c), floors.Get(c))
	}
	require.Equal(t, greedy.StatusSuccess, res.Status)
}

func TestSolve_ReducesOverspend(t *testing.T) {
	floors := alloc.DefaultFloors()
	state0 := alloc.State{}.
		With(alloc.Kos, 1_500_000).
		With(alloc.Makan, 1_000_000).
		With(alloc.Transport, 10000).
		With(alloc.Internet, 5000)
	income := 2_000_000

	res := greedy.Solve(state0, income, floors, 0, 50_000, greedy.DefaultOptions())
	require.LessOrEqual(t, res.FinalState.Sum(), income)
	require.Equal(t, greedy.StatusSuccess, res.Status)
}

func TestSolve_ChasesSavingsTargetWithinOneStep(t *testing.T) {
	floors := alloc.DefaultFloors()
	income := 2_000_000
	state0 := alloc.State{}.
		With(alloc.Kos, 900_000).
		With(alloc.Makan, 800_000).
		With(alloc.Transport, 10000).
		With(alloc.Internet, 5000).
		With(alloc.Jajan, 150_000).
		With(alloc.Hiburan, 134_000).
		With(alloc.Tabungan, 1_000)
	require.Equal(t, income, state0.Sum())

	target := 300_000
	res := greedy.Solve(state0, income, floors, target, 50_000, greedy.DefaultOptions())

	require.GreaterOrEqual(t, res.FinalState.Get(alloc.Tabungan), target-50_000)
	require.LessOrEqual(t, res.FinalState.Sum(), income)
}

func TestSolve_AbsorbsSlackWhenNoTarget(t *testing.T) {
	floors := alloc.DefaultFloors()
	income := 100_000
	state0 := floors.ToState() // sums to 15000, 85000 of slack remains
	res := greedy.Solve(state0, income, floors, 0, 50_000, greedy.DefaultOptions())

	require.Equal(t, greedy.StatusSuccess, res.Status)
	require.Greater(t, res.FinalState.Sum(), state0.Sum())
	require.LessOrEqual(t, res.FinalState.Sum(), income)
}

func TestSolve_PureMinimumFallback(t *testing.T) {
	floors := alloc.DefaultFloors()
	income := floors.Sum()
	res := greedy.Solve(floors.ToState(), income, floors, 0, 50_000, greedy.DefaultOptions())

	require.Equal(t, floors.ToState(), res.FinalState)
	require.Equal(t, greedy.StatusSuccess, res.Status)
}
