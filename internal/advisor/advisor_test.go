package advisor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/internal/advisor"
)

func TestRecommend_NoChangesWhenWithinBoundsAndTargetMet(t *testing.T) {
	state := alloc.DefaultFloors().ToState().With(alloc.Tabungan, 100_000)
	advice := advisor.Recommend(state, 2_000_000, 50_000)

	require.Empty(t, advice.Directions)
	require.NotEmpty(t, advice.Note)
}

func TestRecommend_SuggestsIncreasingSavingsWhenBelowTarget(t *testing.T) {
	state := alloc.DefaultFloors().ToState()
	advice := advisor.Recommend(state, 2_000_000, 300_000)

	require.Contains(t, advice.Directions, "increase tabungan toward the savings target")
}

func TestRecommend_OrdersOverspendByAscendingEffortWeight(t *testing.T) {
	state := alloc.DefaultFloors().ToState().
		With(alloc.Kos, 2_000_000).  // effort weight 3.0, over its 1,000,000 max
		With(alloc.Jajan, 900_000)   // effort weight 1.0, over its 400,000 max

	advice := advisor.Recommend(state, 5_000_000, 0)

	require.Equal(t, []string{
		"reduce spending on jajan",
		"reduce spending on kos",
	}, advice.Directions)
}

func TestRecommend_NeverSuggestsReducingTabungan(t *testing.T) {
	state := alloc.DefaultFloors().ToState().With(alloc.Tabungan, 10_000_000)
	advice := advisor.Recommend(state, 20_000_000, 0)

	for _, d := range advice.Directions {
		require.NotContains(t, d, "tabungan")
	}
}
