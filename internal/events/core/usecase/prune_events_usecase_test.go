package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pageview-analytics/internal/events/core/domain"
)

type fakePruneRepo struct {
	DeleteFn   func(ctx context.Context, cutoff time.Time) (int64, error)
	lastCutoff time.Time
	called     bool
}

func (f *fakePruneRepo) InsertEvent(ctx context.Context, e *domain.PageEvent) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakePruneRepo) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	f.called = true
	f.lastCutoff = cutoff
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, cutoff)
	}
	return 0, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPruneEvents_DeletesBeforeCutoff(t *testing.T) {
	now := time.Date(2026, 5, 1, 3, 30, 0, 0, time.UTC)
	repo := &fakePruneRepo{
		DeleteFn: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 42, nil
		},
	}

	uc := NewPruneEventsUseCase(repo, 30*24*time.Hour, quietLogger())
	uc.now = func() time.Time { return now }

	deleted, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 42 {
		t.Fatalf("expected 42 deleted, got %d", deleted)
	}

	want := time.Date(2026, 4, 1, 3, 30, 0, 0, time.UTC)
	if !repo.lastCutoff.Equal(want) {
		t.Fatalf("expected cutoff %s, got %s", want, repo.lastCutoff)
	}
}

func TestPruneEvents_DisabledWithZeroRetention(t *testing.T) {
	repo := &fakePruneRepo{}
	uc := NewPruneEventsUseCase(repo, 0, quietLogger())

	if uc.Enabled() {
		t.Fatalf("expected pruning to be disabled")
	}

	deleted, err := uc.Execute(context.Background())
	if err != nil || deleted != 0 {
		t.Fatalf("expected no-op, got deleted=%d err=%v", deleted, err)
	}
	if repo.called {
		t.Fatalf("repository must not be called when pruning is disabled")
	}
}

func TestPruneEvents_RepositoryError(t *testing.T) {
	repo := &fakePruneRepo{
		DeleteFn: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, errors.New("locked")
		},
	}
	uc := NewPruneEventsUseCase(repo, time.Hour, quietLogger())

	if _, err := uc.Execute(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
