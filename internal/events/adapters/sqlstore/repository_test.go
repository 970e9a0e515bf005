package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pageview-analytics/internal/database"
	"pageview-analytics/internal/events/core/domain"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	lastQuery  string
	lastArgs   []any
	execCalled bool
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalled = true
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func sampleEvent() *domain.PageEvent {
	return &domain.PageEvent{
		EventID:    "evt-1",
		VisitID:    "v1",
		OccurredAt: time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC),
		Path:       "/pricing",
		Country:    "DE",
	}
}

// ------------------------------------------------------------
// SUCCESS (created)
// ------------------------------------------------------------

func TestEventRepository_InsertEvent_Created(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO page_events") {
				t.Fatalf("unexpected query: %s", query)
			}
			if !strings.Contains(query, "ON CONFLICT (event_id) DO NOTHING") {
				t.Fatalf("expected idempotent insert, got: %s", query)
			}
			return &fakeResult{rowsAffected: 1}, nil
		},
	}

	repo := NewEventRepository(db, database.Postgres)

	created, err := repo.InsertEvent(context.Background(), sampleEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true, got false")
	}
	if !db.execCalled {
		t.Fatalf("expected ExecContext to be called")
	}
	if len(db.lastArgs) != 11 {
		t.Fatalf("expected 11 args, got %d", len(db.lastArgs))
	}
	if !strings.Contains(db.lastQuery, "$11") {
		t.Fatalf("expected numbered placeholders, got: %s", db.lastQuery)
	}
	if db.lastArgs[2] != nil {
		t.Fatalf("expected empty session id to bind as NULL, got %v", db.lastArgs[2])
	}
	if _, ok := db.lastArgs[3].(time.Time); !ok {
		t.Fatalf("expected occurred_at bound as time.Time, got %T", db.lastArgs[3])
	}
}

func TestEventRepository_InsertEvent_SQLitePlaceholders(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db, database.SQLite)

	if _, err := repo.InsertEvent(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(db.lastQuery, "$1") {
		t.Fatalf("sqlite query must use ? placeholders: %s", db.lastQuery)
	}
	if got := db.lastArgs[3]; got != "2026-01-15T11:00:00.000Z" {
		t.Fatalf("expected fixed-width text timestamp, got %v", got)
	}
}

// ------------------------------------------------------------
// DUPLICATE (rowsAffected=0)
// ------------------------------------------------------------

func TestEventRepository_InsertEvent_Duplicate(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		},
	}

	repo := NewEventRepository(db, database.Postgres)

	created, err := repo.InsertEvent(context.Background(), sampleEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

// ------------------------------------------------------------
// DB ERROR
// ------------------------------------------------------------

func TestEventRepository_InsertEvent_Error(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db error")
		},
	}

	repo := NewEventRepository(db, database.Postgres)

	created, err := repo.InsertEvent(context.Background(), sampleEvent())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if created {
		t.Fatalf("expected created=false on error")
	}
}

// ------------------------------------------------------------
// DELETE
// ------------------------------------------------------------

func TestEventRepository_DeleteEventsBefore(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 7}, nil
		},
	}

	repo := NewEventRepository(db, database.Postgres)
	cutoff := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	deleted, err := repo.DeleteEventsBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 7 {
		t.Fatalf("expected 7 deleted, got %d", deleted)
	}
	if !strings.Contains(db.lastQuery, "occurred_at < $1") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
}

// ------------------------------------------------------------
// SQLITE ROUND TRIP
// ------------------------------------------------------------

func TestEventRepository_SQLite(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := database.Open(ctx, database.Config{
		Dialect:      database.SQLite,
		DSN:          filepath.Join(t.TempDir(), "events.db"),
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sqlDB.Close()
	if err := database.Migrate(sqlDB, database.SQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := NewEventRepository(NewSQLDB(sqlDB), database.SQLite)

	old := sampleEvent()
	old.EventID = "old"
	old.OccurredAt = time.Now().Add(-90 * 24 * time.Hour)

	recent := sampleEvent()
	recent.EventID = "recent"
	recent.OccurredAt = time.Now().Add(-time.Hour)

	for _, e := range []*domain.PageEvent{old, recent} {
		created, err := repo.InsertEvent(ctx, e)
		if err != nil || !created {
			t.Fatalf("insert %s: created=%v err=%v", e.EventID, created, err)
		}
	}

	created, err := repo.InsertEvent(ctx, recent)
	if err != nil {
		t.Fatalf("duplicate insert: %v", err)
	}
	if created {
		t.Fatalf("expected duplicate event_id to be ignored")
	}

	deleted, err := repo.DeleteEventsBefore(ctx, time.Now().Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted row, got %d", deleted)
	}

	var n int
	if err := sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM page_events`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 remaining row, got %d", n)
	}
}
