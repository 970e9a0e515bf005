package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pageview-analytics/internal/database"
	"pageview-analytics/internal/events/core/domain"
	"pageview-analytics/internal/events/core/ports"
)

type EventRepository struct {
	db        DB
	dialect   database.Dialect
	insertSQL string
	deleteSQL string
}

func NewEventRepository(db DB, dialect database.Dialect) *EventRepository {
	return &EventRepository{
		db:        db,
		dialect:   dialect,
		insertSQL: buildInsertSQL(dialect),
		deleteSQL: "DELETE FROM page_events WHERE occurred_at < " + dialect.Placeholder(1),
	}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

var insertColumns = []string{
	"event_id",
	"visit_id",
	"session_id",
	"occurred_at",
	"url",
	"path",
	"country",
	"city",
	"region",
	"referrer",
	"user_agent",
}

func buildInsertSQL(d database.Dialect) string {
	placeholders := make([]string, len(insertColumns))
	for i := range placeholders {
		placeholders[i] = d.Placeholder(i + 1)
	}
	return fmt.Sprintf(`
INSERT INTO page_events (
    %s
) VALUES (
    %s
)
ON CONFLICT (event_id) DO NOTHING`,
		strings.Join(insertColumns, ",\n    "),
		strings.Join(placeholders, ", "))
}

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.PageEvent) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.insertSQL,
		e.EventID,
		nullIfEmpty(e.VisitID),
		nullIfEmpty(e.SessionID),
		r.dialect.BindTime(e.OccurredAt),
		nullIfEmpty(e.URL),
		nullIfEmpty(e.Path),
		nullIfEmpty(e.Country),
		nullIfEmpty(e.City),
		nullIfEmpty(e.Region),
		nullIfEmpty(e.Referrer),
		nullIfEmpty(e.UserAgent),
	)
	if err != nil {
		return false, fmt.Errorf("insert page event %s: %w", e.EventID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> duplicate event_id (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *EventRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.deleteSQL, r.dialect.BindTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("delete page events before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return res.RowsAffected()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
