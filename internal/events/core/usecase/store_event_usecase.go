package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pariz/gountries"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pageview-analytics/internal/events/core/domain"
	"pageview-analytics/internal/events/core/ports"
)

const (
	DefaultMaxFutureSkew = time.Minute
	MaxBulkEvents        = 1000
	maxEventIDLength     = 128
)

var (
	ErrInvalidEvent    = errors.New("invalid event")
	ErrFutureTime      = errors.New("timestamp cannot be in the future")
	ErrTooManyEvents   = errors.New("too many events in one batch")
	ErrEmptyEventBatch = errors.New("event batch is empty")
)

type StoreEventOptions struct {
	// Resolver fills an empty country from the client IP. Optional.
	Resolver      ports.CountryResolverPort
	MaxFutureSkew time.Duration
	Now           func() time.Time
}

type StoreEventUseCase struct {
	repo      ports.EventRepositoryPort
	resolver  ports.CountryResolverPort
	countries *gountries.Query
	skew      time.Duration
	now       func() time.Time
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort, opts StoreEventOptions) *StoreEventUseCase {
	if opts.MaxFutureSkew <= 0 {
		opts.MaxFutureSkew = DefaultMaxFutureSkew
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &StoreEventUseCase{
		repo:      repo,
		resolver:  opts.Resolver,
		countries: gountries.New(),
		skew:      opts.MaxFutureSkew,
		now:       opts.Now,
	}
}

type StoreEventInput struct {
	EventID    string
	VisitID    string
	SessionID  string
	OccurredAt time.Time // zero means "now"
	URL        string
	Path       string
	Country    string
	City       string
	Region     string
	Referrer   string
	UserAgent  string
	ClientIP   string
}

type StoreEventResult struct {
	EventID string
	Created bool
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (StoreEventResult, error) {
	now := uc.now().UTC()

	if err := uc.validateInput(in, now); err != nil {
		return StoreEventResult{}, err
	}

	e := uc.buildEvent(in, now)

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return StoreEventResult{}, err
	}

	return StoreEventResult{EventID: e.EventID, Created: created}, nil
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateEvents rejects the whole batch if any item is invalid; otherwise
// items are stored one by one and duplicates are counted, not failed.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	if len(in.Events) == 0 {
		return res, ErrEmptyEventBatch
	}
	if len(in.Events) > MaxBulkEvents {
		return res, ErrTooManyEvents
	}

	now := uc.now().UTC()
	for _, ev := range in.Events {
		if err := uc.validateInput(ev, now); err != nil {
			return res, err
		}
	}

	for _, ev := range in.Events {
		out, err := uc.Execute(ctx, ev)
		if err != nil {
			return res, err
		}

		if out.Created {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput, now time.Time) error {
	if strings.TrimSpace(in.URL) == "" && strings.TrimSpace(in.Path) == "" {
		return ErrInvalidEvent
	}
	if len(strings.TrimSpace(in.EventID)) > maxEventIDLength {
		return ErrInvalidEvent
	}

	if !in.OccurredAt.IsZero() && in.OccurredAt.After(now.Add(uc.skew)) {
		return ErrFutureTime
	}

	return nil
}

func (uc *StoreEventUseCase) buildEvent(in StoreEventInput, now time.Time) *domain.PageEvent {
	occurredAt := in.OccurredAt.UTC()
	if in.OccurredAt.IsZero() {
		occurredAt = now
	}

	eventID := strings.TrimSpace(in.EventID)
	if eventID == "" {
		eventID = uuid.NewString()
	}

	country := uc.normalizeCountry(in.Country)
	if country == "" && uc.resolver != nil {
		country = uc.resolver.CountryCode(in.ClientIP)
	}

	return &domain.PageEvent{
		EventID:    eventID,
		VisitID:    strings.TrimSpace(in.VisitID),
		SessionID:  strings.TrimSpace(in.SessionID),
		OccurredAt: occurredAt,
		URL:        strings.TrimSpace(in.URL),
		Path:       strings.TrimSpace(in.Path),
		Country:    country,
		City:       normalizePlace(in.City),
		Region:     normalizePlace(in.Region),
		Referrer:   strings.TrimSpace(in.Referrer),
		UserAgent:  strings.TrimSpace(in.UserAgent),
	}
}

// normalizeCountry maps alpha-2, alpha-3 and common English names to the
// upper-case alpha-2 code. Unrecognised values are kept as sent.
func (uc *StoreEventUseCase) normalizeCountry(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if len(s) == 2 || len(s) == 3 {
		if c, err := uc.countries.FindCountryByAlpha(s); err == nil {
			return c.Codes.Alpha2
		}
	}
	if c, err := uc.countries.FindCountryByName(s); err == nil {
		return c.Codes.Alpha2
	}
	return s
}

// normalizePlace title-cases city and region names that arrive in a single
// case ("berlin", "NEW YORK"); mixed-case input is trusted.
func normalizePlace(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if s == "" {
		return ""
	}
	if s != strings.ToLower(s) && s != strings.ToUpper(s) {
		return s
	}
	return cases.Title(language.Und).String(s)
}
