package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/solverkit/allocsolver/internal/metrics"
)

func TestObserveSolve_IncrementsCounterForLabelPair(t *testing.T) {
	m := metrics.New()
	reg := prometheus.NewRegistry()
	m.Register(reg)

	m.ObserveSolve("astar", "success", 0.002)
	m.ObserveSolve("astar", "success", 0.003)

	got, err := m.SolvesTotal.GetMetricWithLabelValues("astar", "success")
	require.NoError(t, err)

	var metric dto.Metric
	require.NoError(t, got.Write(&metric))
	require.Equal(t, float64(2), metric.GetCounter().GetValue())
}
