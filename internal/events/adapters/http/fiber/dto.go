package fiber

import (
	"time"

	"pageview-analytics/internal/events/core/usecase"
)

// CreateEventRequest represents a page-view beacon
// @Description Page view payload. Either url or path is required.
type CreateEventRequest struct {
	EventID    string     `json:"eventId" example:"3f1c9a4e-1b7e-4c56-9d1f-2b0c8f4b7a10"`
	VisitID    string     `json:"visitId" example:"visit-42"`
	SessionID  string     `json:"sessionId" example:"sess-7"`
	OccurredAt *time.Time `json:"occurredAt" example:"2026-01-15T11:59:00Z"`
	URL        string     `json:"url" example:"https://example.com/pricing?utm_source=newsletter"`
	Path       string     `json:"path" example:"/pricing"`
	Country    string     `json:"country" example:"DE"`
	City       string     `json:"city" example:"Berlin"`
	Region     string     `json:"region" example:"Berlin"`
	Referrer   string     `json:"referrer" example:"https://news.ycombinator.com/"`
	UserAgent  string     `json:"userAgent"`
}

type CreateEventResponse struct {
	Status  string `json:"status" example:"created"`
	EventID string `json:"eventId,omitempty"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}

// toInput copies the payload; the User-Agent header and client IP stand in
// for fields the beacon did not send.
func (r CreateEventRequest) toInput(userAgent, clientIP string) usecase.StoreEventInput {
	in := usecase.StoreEventInput{
		EventID:   r.EventID,
		VisitID:   r.VisitID,
		SessionID: r.SessionID,
		URL:       r.URL,
		Path:      r.Path,
		Country:   r.Country,
		City:      r.City,
		Region:    r.Region,
		Referrer:  r.Referrer,
		UserAgent: r.UserAgent,
		ClientIP:  clientIP,
	}
	if r.OccurredAt != nil {
		in.OccurredAt = *r.OccurredAt
	}
	if in.UserAgent == "" {
		in.UserAgent = userAgent
	}
	return in
}
