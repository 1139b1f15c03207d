package schedule

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/solverkit/allocsolver/router"
)

func TestRunOnce_SolvesAndPersistsFinalState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, SaveSnapshot(path, Snapshot{
		State: map[string]int{
			"kos": 800_000, "makan": 650_000, "transport": 10_000,
			"internet": 5_000, "jajan": 0, "hiburan": 0, "tabungan": 30_000,
		},
		Income: 2_000_000,
		Target: 0,
		Step:   50_000,
	}))

	s := NewScheduler(path, router.DefaultOptions(), zerolog.Nop())
	s.runOnce()

	got, err := LoadSnapshot(path)
	require.NoError(t, err)
	sum := 0
	for _, v := range got.State {
		sum += v
	}
	require.LessOrEqual(t, sum, 2_000_000)
}

func TestRunOnce_LogsAndReturnsOnMissingSnapshot(t *testing.T) {
	s := NewScheduler(filepath.Join(t.TempDir(), "missing.json"), router.DefaultOptions(), zerolog.Nop())
	require.NotPanics(t, s.runOnce)
}
