package usecase

import (
	"context"
	"log/slog"
	"time"

	"pageview-analytics/internal/events/core/ports"
)

// PruneEventsUseCase enforces the retention period on stored page views.
type PruneEventsUseCase struct {
	repo      ports.EventRepositoryPort
	retention time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// NewPruneEventsUseCase returns a pruner. A retention of zero disables pruning.
func NewPruneEventsUseCase(repo ports.EventRepositoryPort, retention time.Duration, logger *slog.Logger) *PruneEventsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &PruneEventsUseCase{
		repo:      repo,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}
}

func (uc *PruneEventsUseCase) Enabled() bool {
	return uc.retention > 0
}

func (uc *PruneEventsUseCase) Execute(ctx context.Context) (int64, error) {
	if !uc.Enabled() {
		return 0, nil
	}

	cutoff := uc.now().UTC().Add(-uc.retention)

	deleted, err := uc.repo.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		uc.logger.Info("pruned expired page events", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}
