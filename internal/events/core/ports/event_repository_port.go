package ports

import (
	"context"
	"time"

	"pageview-analytics/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvent:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate event_id (idempotent)
	//   created = false, err != nil -> DB error
	InsertEvent(ctx context.Context, e *domain.PageEvent) (created bool, err error)

	// DeleteEventsBefore removes events with occurred_at < cutoff.
	DeleteEventsBefore(ctx context.Context, cutoff time.Time) (deleted int64, err error)
}

// CountryResolverPort maps a client IP to an ISO alpha-2 code, "" when unknown.
type CountryResolverPort interface {
	CountryCode(ip string) string
}
