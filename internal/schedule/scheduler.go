package schedule

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/router"
)

// Scheduler periodically re-solves the snapshot at path and persists the
// resulting final state back into it.
type Scheduler struct {
	cron   *cron.Cron
	path   string
	opts   router.Options
	logger zerolog.Logger
}

// NewScheduler builds a Scheduler that re-solves the snapshot at path using
// opts on each tick.
func NewScheduler(path string, opts router.Options, logger zerolog.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), path: path, opts: opts, logger: logger}
}

// Start registers runOnce on spec (a cron expression or entry such as
// "@daily") and starts the scheduler's own goroutine.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler, waiting for any in-flight run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// runOnce loads the snapshot, re-solves it, logs the outcome, and persists
// the new final state. Load/solve/save errors are logged, never panicked:
// a missed tick should not take the process down.
func (s *Scheduler) runOnce() {
	snap, err := LoadSnapshot(s.path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("failed to load snapshot")
		return
	}

	state0, err := alloc.StateFromMap(snap.State)
	if err != nil {
		s.logger.Error().Err(err).Msg("snapshot state invalid")
		return
	}

	floors := alloc.DefaultFloors()
	if len(snap.Floors) > 0 {
		floors, err = alloc.FloorsFromMap(snap.Floors)
		if err != nil {
			s.logger.Error().Err(err).Msg("snapshot floors invalid")
			return
		}
	}

	res := router.Solve(state0, snap.Income, floors, snap.Target, snap.Step, s.opts)
	s.logger.Info().
		Str("method", string(res.Method)).
		Str("status", string(res.Status)).
		Msg("scheduled solve completed")

	if res.Status == router.StatusAiRecommendation {
		return
	}

	snap.State = res.FinalState.ToMap()
	if err := SaveSnapshot(s.path, snap); err != nil {
		s.logger.Error().Err(err).Msg("failed to save snapshot")
	}
}
