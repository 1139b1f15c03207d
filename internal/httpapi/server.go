package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/internal/metrics"
	"github.com/solverkit/allocsolver/router"
)

// Server exposes router.Solve over HTTP.
type Server struct {
	floors  alloc.Floors
	opts    router.Options
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewServer builds a Server with the given default floors, engine options,
// metrics sink, and logger.
func NewServer(floors alloc.Floors, opts router.Options, m *metrics.Metrics, logger zerolog.Logger) *Server {
	return &Server{floors: floors, opts: opts, metrics: m, logger: logger}
}

// Handler returns the chi router with every route mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(s.loggingMiddleware)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/v1/solve", s.handleSolve)

	if s.metrics != nil {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
