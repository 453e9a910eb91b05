// Package scheduler runs the background jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/owner-portal/backend/internal/application/usecase/dashboard"
)

// SnapshotWarmer is the use case the warm job runs.
type SnapshotWarmer interface {
	Execute(ctx context.Context) (*dashboard.WarmSnapshotsOutput, error)
}

// Scheduler runs the snapshot warm job on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	warmer   SnapshotWarmer
	logger   *slog.Logger
	schedule string
	timeout  time.Duration
}

// NewScheduler creates a new scheduler instance. Each run is bounded by timeout.
func NewScheduler(warmer SnapshotWarmer, logger *slog.Logger, schedule string, timeout time.Duration) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))

	return &Scheduler{
		cron:     c,
		warmer:   warmer,
		logger:   logger,
		schedule: schedule,
		timeout:  timeout,
	}
}

// Start registers the warm job and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.WarmSnapshots); err != nil {
		return fmt.Errorf("failed to schedule snapshot warm job: %w", err)
	}
	s.logger.Info("scheduled snapshot warm job", "schedule", s.schedule)

	s.cron.Start()
	return nil
}

// Stop stops the scheduler. The returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// WarmSnapshots runs one warm pass.
func (s *Scheduler) WarmSnapshots() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	output, err := s.warmer.Execute(ctx)
	if err != nil {
		s.logger.Error("snapshot warm job failed", "error", err)
		return
	}

	s.logger.Info("snapshot warm job finished",
		"refreshed", output.Refreshed,
		"failed", output.Failed,
		"duration", time.Since(started),
	)
}
