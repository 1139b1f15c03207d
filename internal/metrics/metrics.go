package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every collector cmd/allocsolver's HTTP server reports to.
type Metrics struct {
	SolvesTotal   *prometheus.CounterVec
	SolveDuration *prometheus.HistogramVec
}

// New builds a fresh, unregistered Metrics.
func New() *Metrics {
	return &Metrics{
		SolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "allocsolver_solves_total",
			Help: "Total number of Solve calls, labeled by the method that produced the result and its status.",
		}, []string{"method", "status"}),
		SolveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "allocsolver_solve_duration_seconds",
			Help:    "Wall-clock duration of Solve calls.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"method"}),
	}
}

// Register registers every collector with reg.
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.SolvesTotal, m.SolveDuration)
}

// ObserveSolve records one Solve call's outcome.
func (m *Metrics) ObserveSolve(method, status string, seconds float64) {
	m.SolvesTotal.WithLabelValues(method, status).Inc()
	m.SolveDuration.WithLabelValues(method).Observe(seconds)
}
