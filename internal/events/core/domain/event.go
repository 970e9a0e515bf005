package domain

import "time"

// PageEvent is one stored page view. Empty optional fields are persisted as NULL.
type PageEvent struct {
	EventID    string
	VisitID    string
	SessionID  string
	OccurredAt time.Time
	URL        string
	Path       string
	Country    string
	City       string
	Region     string
	Referrer   string
	UserAgent  string
}
