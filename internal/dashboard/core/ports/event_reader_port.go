package ports

import (
	"context"
	"time"

	"pageview-analytics/internal/dashboard/core/domain"
)

type EventReaderPort interface {
	// FetchEvents returns events with occurred_at >= since, newest first,
	// at most limit rows.
	FetchEvents(ctx context.Context, since time.Time, limit int) ([]domain.RawEvent, error)
}
