package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "pageview-analytics/internal/dashboard/adapters/http/fiber"
	"pageview-analytics/internal/dashboard/core/domain"
	"pageview-analytics/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.
type fakeGetDashboardUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardResult, error)
	lastInput usecase.GetDashboardInput
	called    bool
}

func (f *fakeGetDashboardUseCase) Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardResult, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

func setupApp(t *testing.T, uc httpadapter.GetDashboardUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewDashboardHandler(uc)
	app.Get("/api/analytics/dashboard", h.GetDashboard)
	return app
}

var generatedAt = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetDashboard_Success(t *testing.T) {
	uc := &fakeGetDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardResult, error) {
			if in.Range != "24h" {
				t.Fatalf("expected range=24h, got %q", in.Range)
			}
			b := domain.EmptyBreakdowns()
			b.Pages = []domain.BreakdownEntry{{Label: "/a", Value: 1, Percent: 1}}
			last := generatedAt.Add(-time.Minute)
			return &domain.DashboardResult{
				Range:       domain.Range24Hours,
				Hours:       24,
				GeneratedAt: generatedAt,
				Summary: domain.Summary{
					Visitors:    1,
					PageViews:   2,
					LastEventAt: &last,
				},
				Trend:      []domain.TrendPoint{{Label: "11:00", Visitors: 1, Start: "2026-01-15T11:00:00Z"}},
				Breakdowns: b,
			}, nil
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard?range=24h", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !uc.called {
		t.Fatalf("expected usecase to be called")
	}

	var body httpadapter.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Range != "24h" || body.Hours != 24 {
		t.Fatalf("unexpected range in body: %+v", body)
	}
	if body.Summary.Visitors != 1 || body.Summary.PageViews != 2 {
		t.Fatalf("unexpected summary: %+v", body.Summary)
	}
	if len(body.Breakdowns.Pages) != 1 || body.Breakdowns.Pages[0].Label != "/a" {
		t.Fatalf("unexpected pages breakdown: %+v", body.Breakdowns.Pages)
	}
	if body.Breakdowns.Referrers == nil {
		t.Fatalf("expected empty referrers list, got null")
	}
	if body.Error != "" {
		t.Fatalf("expected no error, got %q", body.Error)
	}
}

func TestGetDashboard_NoRangePassesEmpty(t *testing.T) {
	uc := &fakeGetDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardResult, error) {
			return domain.EmptyDashboard(domain.DefaultRange, generatedAt, ""), nil
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if uc.lastInput.Range != "" {
		t.Fatalf("expected empty range to reach usecase, got %q", uc.lastInput.Range)
	}
}

// ------------------------------------------------------------
// VALIDATION ERROR
// ------------------------------------------------------------

func TestGetDashboard_InvalidRange(t *testing.T) {
	uc := &fakeGetDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardResult, error) {
			return nil, domain.ErrInvalidRange
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard?range=90d", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}

	var body httpadapter.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "invalid_range" {
		t.Fatalf("expected error=invalid_range, got %q", body.Error)
	}
}

// ------------------------------------------------------------
// FETCH FAILURE / INTERNAL ERROR
// ------------------------------------------------------------

func TestGetDashboard_FetchFailureIs503WithZeroedBody(t *testing.T) {
	uc := &fakeGetDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardResult, error) {
			return domain.EmptyDashboard(domain.Range7Days, generatedAt, "failed to load analytics events: timeout"), nil
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard?range=7d", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.StatusCode)
	}

	var body httpadapter.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error == "" {
		t.Fatalf("expected error message in body")
	}
	if body.Summary.Visitors != 0 || len(body.Trend) != 0 {
		t.Fatalf("expected zeroed figures, got %+v", body)
	}
}

func TestGetDashboard_UnexpectedError(t *testing.T) {
	uc := &fakeGetDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardResult, error) {
			return nil, errors.New("boom")
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}
