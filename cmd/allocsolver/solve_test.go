package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSolveCmd_ProducesJSONResultForFeasibleInput(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(stateFile, []byte(`{
		"kos": 800000, "makan": 650000, "transport": 10000,
		"internet": 5000, "jajan": 0, "hiburan": 0, "tabungan": 30000
	}`), 0o644))

	root := newRootCmd(zerolog.Nop())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"solve", "--income", "2000000", "--step", "50000", "--input", stateFile})

	require.NoError(t, root.Execute())

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, "success", got["status"])
}

func TestSolveCmd_RequiresIncomeFlag(t *testing.T) {
	root := newRootCmd(zerolog.Nop())
	root.SetArgs([]string{"solve"})
	require.Error(t, root.Execute())
}
