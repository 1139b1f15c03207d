package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solverkit/allocsolver/internal/schedule"
)

// newScheduleCmd builds `allocsolver schedule`: a long-running process that
// re-solves a snapshot file on a cron schedule until interrupted.
func newScheduleCmd(logger zerolog.Logger) *cobra.Command {
	var (
		snapshotPath string
		cronSpec     string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Periodically re-solve a snapshot file on a cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			path := snapshotPath
			if path == "" {
				path = cfg.SnapshotPath
			}
			spec := cronSpec
			if spec == "" {
				spec = cfg.ScheduleCron
			}

			sched := schedule.NewScheduler(path, cfg.RouterOptions(), logger)
			if err := sched.Start(spec); err != nil {
				return fmt.Errorf("starting scheduler: %w", err)
			}
			defer sched.Stop()

			logger.Info().Str("path", path).Str("cron", spec).Msg("scheduler running")

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			logger.Info().Msg("shutting down scheduler")
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "path to the JSON snapshot file (overrides config)")
	cmd.Flags().StringVar(&cronSpec, "cron", "", "cron expression (overrides config)")

	return cmd
}
