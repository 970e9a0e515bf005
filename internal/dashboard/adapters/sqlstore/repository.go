package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pageview-analytics/internal/dashboard/core/domain"
	"pageview-analytics/internal/database"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type EventReader struct {
	db      DB
	dialect database.Dialect
}

func NewEventReader(db DB, dialect database.Dialect) *EventReader {
	return &EventReader{db: db, dialect: dialect}
}

func (r *EventReader) FetchEvents(ctx context.Context, since time.Time, limit int) ([]domain.RawEvent, error) {
	query := fmt.Sprintf(`
SELECT
    event_id, visit_id, session_id, occurred_at,
    url, path, country, city, region, referrer, user_agent
FROM page_events
WHERE occurred_at >= %s
ORDER BY occurred_at DESC
LIMIT %s`, r.dialect.Placeholder(1), r.dialect.Placeholder(2))

	rows, err := r.db.QueryContext(ctx, query, r.dialect.BindTime(since), limit)
	if err != nil {
		return nil, fmt.Errorf("query page_events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.RawEvent, 0, 64)
	for rows.Next() {
		var (
			ev                                           domain.RawEvent
			visitID, sessionID, occurredAt               sql.NullString
			url, path, country, city, region, ref, agent sql.NullString
		)

		if err := rows.Scan(
			&ev.EventID, &visitID, &sessionID, &occurredAt,
			&url, &path, &country, &city, &region, &ref, &agent,
		); err != nil {
			return nil, fmt.Errorf("scan page_events: %w", err)
		}

		// A NULL timestamp stays empty and the row is skipped downstream.
		ev.OccurredAt = occurredAt.String
		ev.VisitID = nullable(visitID)
		ev.SessionID = nullable(sessionID)
		ev.URL = nullable(url)
		ev.Path = nullable(path)
		ev.Country = nullable(country)
		ev.City = nullable(city)
		ev.Region = nullable(region)
		ev.Referrer = nullable(ref)
		ev.UserAgent = nullable(agent)

		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate page_events: %w", err)
	}

	return events, nil
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
