// Package jobs runs periodic maintenance tasks on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type JobFunc func(ctx context.Context) error

type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// AddJob registers fn under a standard five-field cron spec. Every run gets
// its own context bounded by timeout; failures are logged, not returned.
func (s *Scheduler) AddJob(name, schedule string, timeout time.Duration, fn JobFunc) error {
	_, err := s.cron.AddFunc(schedule, s.wrap(name, timeout, fn))
	if err != nil {
		return fmt.Errorf("scheduling job %q: %w", name, err)
	}
	s.logger.Debug("job scheduled", "job", name, "schedule", schedule)
	return nil
}

func (s *Scheduler) wrap(name string, timeout time.Duration, fn JobFunc) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		started := time.Now()
		if err := fn(ctx); err != nil {
			s.logger.Error("job failed", "job", name, "error", err)
			return
		}
		s.logger.Debug("job finished", "job", name, "duration", time.Since(started))
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("jobs still running at shutdown")
	}
}
