package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solverkit/allocsolver/internal/httpapi"
	"github.com/solverkit/allocsolver/internal/metrics"
)

// newServeCmd builds `allocsolver serve`: an HTTP server wrapping
// router.Solve.
func newServeCmd(logger zerolog.Logger) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			floors, err := cfg.AllocFloors()
			if err != nil {
				return fmt.Errorf("parsing floors: %w", err)
			}

			m := metrics.New()
			m.Register(prometheus.DefaultRegisterer)

			srv := httpapi.NewServer(floors, cfg.RouterOptions(), m, logger)

			listenAddr := addr
			if listenAddr == "" {
				listenAddr = cfg.ServerAddr
			}

			logger.Info().Str("addr", listenAddr).Msg("starting HTTP server")
			return http.ListenAndServe(listenAddr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
