package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pageview-analytics/internal/dashboard/core/aggregator"
	"pageview-analytics/internal/dashboard/core/domain"
	"pageview-analytics/internal/dashboard/core/ports"
)

const DefaultMaxRows = 5000

type GetDashboardInput struct {
	Range string // "24h" / "7d" / "30d"; empty selects the default
}

type Options struct {
	// MaxRows caps the fetch. Windows holding more events than this are
	// silently truncated to the newest MaxRows rows.
	MaxRows      int
	FetchTimeout time.Duration
	Location     *time.Location
	Now          func() time.Time
	Logger       *slog.Logger
}

type GetDashboardUseCase struct {
	reader ports.EventReaderPort
	opts   Options
}

func NewGetDashboardUseCase(reader ports.EventReaderPort, opts Options) *GetDashboardUseCase {
	if opts.MaxRows <= 0 {
		opts.MaxRows = DefaultMaxRows
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &GetDashboardUseCase{reader: reader, opts: opts}
}

// Execute validates the range, fetches the window and aggregates it.
// The only error returned is domain.ErrInvalidRange; a failed fetch comes
// back as a zeroed result with Error set.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.DashboardResult, error) {
	r, err := domain.ParseRange(in.Range)
	if err != nil {
		return nil, err
	}

	now := uc.opts.Now().UTC()
	hours := r.Hours()
	since := now.Add(-time.Duration(hours) * time.Hour)

	fetchCtx := ctx
	if uc.opts.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, uc.opts.FetchTimeout)
		defer cancel()
	}

	rows, err := uc.reader.FetchEvents(fetchCtx, since, uc.opts.MaxRows)
	if err != nil {
		uc.opts.Logger.Error("failed to load analytics events",
			"range", string(r),
			"since", since,
			"error", err)
		return domain.EmptyDashboard(r, now, fmt.Sprintf("failed to load analytics events: %v", err)), nil
	}

	res := aggregator.Aggregate(rows, aggregator.Options{
		Hours:    hours,
		Now:      now,
		Location: uc.opts.Location,
	})
	res.Range = r
	res.Truncated = len(rows) >= uc.opts.MaxRows

	if res.Truncated {
		uc.opts.Logger.Warn("analytics window truncated at row cap",
			"range", string(r),
			"max_rows", uc.opts.MaxRows)
	}

	uc.opts.Logger.Debug("dashboard aggregated",
		"range", string(r),
		"rows", len(rows),
		"visitors", res.Summary.Visitors)

	return &res, nil
}
