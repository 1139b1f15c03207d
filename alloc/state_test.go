package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solverkit/allocsolver/alloc"
)

func TestState_WithAndGetDoNotAlias(t *testing.T) {
	s0 := alloc.State{}
	s1 := s0.With(alloc.Kos, 800000)

	require.Equal(t, 0, s0.Get(alloc.Kos), "With must not mutate the receiver")
	require.Equal(t, 800000, s1.Get(alloc.Kos))
}

func TestState_Sum(t *testing.T) {
	s := alloc.State{}.With(alloc.Kos, 100).With(alloc.Makan, 200).With(alloc.Tabungan, 50)
	require.Equal(t, 350, s.Sum())
}

func TestState_Add(t *testing.T) {
	s := alloc.State{}.With(alloc.Jajan, 1000)
	require.Equal(t, 1500, s.Add(alloc.Jajan, 500).Get(alloc.Jajan))
	require.Equal(t, 500, s.Add(alloc.Jajan, -500).Get(alloc.Jajan))
}

func TestStateFromMap_InsertsMissingTabungan(t *testing.T) {
	m := map[string]int{
		"kos": 1, "makan": 2, "transport": 10000, "internet": 5000,
		"jajan": 3, "hiburan": 4,
	}
	s, err := alloc.StateFromMap(m)
	require.NoError(t, err)
	require.Equal(t, 0, s.Get(alloc.Tabungan))
}

func TestStateFromMap_MissingCategory(t *testing.T) {
	m := map[string]int{"kos": 1}
	_, err := alloc.StateFromMap(m)
	require.ErrorIs(t, err, alloc.ErrMissingCategory)
}

func TestStateFromMap_UnknownCategory(t *testing.T) {
	m := map[string]int{
		"kos": 1, "makan": 2, "transport": 3, "internet": 4,
		"jajan": 5, "hiburan": 6, "rent": 7,
	}
	_, err := alloc.StateFromMap(m)
	require.ErrorIs(t, err, alloc.ErrUnknownCategory)
}

func TestState_ToMapRoundTrip(t *testing.T) {
	s := alloc.State{}.With(alloc.Kos, 100).With(alloc.Tabungan, 200)
	m := s.ToMap()
	s2, err := alloc.StateFromMap(m)
	require.NoError(t, err)
	require.Equal(t, s, s2)
}
