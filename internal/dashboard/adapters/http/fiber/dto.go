package fiber

import (
	"time"

	"pageview-analytics/internal/dashboard/core/domain"
)

type SummaryResponse struct {
	Visitors       int        `json:"visitors" example:"42"`
	PageViews      int        `json:"pageViews" example:"118"`
	ActiveVisitors int        `json:"activeVisitors" example:"3"`
	BounceRate     float64    `json:"bounceRate" example:"0.45"`
	LastEventAt    *time.Time `json:"lastEventAt"`
}

type TrendPointResponse struct {
	Label    string `json:"label" example:"14:00"`
	Visitors int    `json:"visitors" example:"7"`
	Start    string `json:"start" example:"2026-01-15T14:00:00Z"`
}

type BreakdownEntryResponse struct {
	Label   string  `json:"label" example:"/pricing"`
	Value   int     `json:"value" example:"12"`
	Percent float64 `json:"percent" example:"0.29"`
}

type BreakdownsResponse struct {
	Pages            []BreakdownEntryResponse `json:"pages"`
	Referrers        []BreakdownEntryResponse `json:"referrers"`
	Countries        []BreakdownEntryResponse `json:"countries"`
	Devices          []BreakdownEntryResponse `json:"devices"`
	OperatingSystems []BreakdownEntryResponse `json:"operatingSystems"`
	Browsers         []BreakdownEntryResponse `json:"browsers"`
	Hostnames        []BreakdownEntryResponse `json:"hostnames"`
	UTMSources       []BreakdownEntryResponse `json:"utmSources"`
}

type DashboardResponse struct {
	Range       string               `json:"range" example:"7d"`
	Hours       int                  `json:"hours" example:"168"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Summary     SummaryResponse      `json:"summary"`
	Trend       []TrendPointResponse `json:"trend"`
	Breakdowns  BreakdownsResponse   `json:"breakdowns"`
	Truncated   bool                 `json:"truncated"`
	Error       string               `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_range"`
	Message string `json:"message" example:"range must be one of 24h, 7d, 30d"`
}

func toDashboardResponse(res *domain.DashboardResult) DashboardResponse {
	resp := DashboardResponse{
		Range:       string(res.Range),
		Hours:       res.Hours,
		GeneratedAt: res.GeneratedAt,
		Summary: SummaryResponse{
			Visitors:       res.Summary.Visitors,
			PageViews:      res.Summary.PageViews,
			ActiveVisitors: res.Summary.ActiveVisitors,
			BounceRate:     res.Summary.BounceRate,
			LastEventAt:    res.Summary.LastEventAt,
		},
		Trend: make([]TrendPointResponse, 0, len(res.Trend)),
		Breakdowns: BreakdownsResponse{
			Pages:            toEntries(res.Breakdowns.Pages),
			Referrers:        toEntries(res.Breakdowns.Referrers),
			Countries:        toEntries(res.Breakdowns.Countries),
			Devices:          toEntries(res.Breakdowns.Devices),
			OperatingSystems: toEntries(res.Breakdowns.OperatingSystems),
			Browsers:         toEntries(res.Breakdowns.Browsers),
			Hostnames:        toEntries(res.Breakdowns.Hostnames),
			UTMSources:       toEntries(res.Breakdowns.UTMSources),
		},
		Truncated: res.Truncated,
		Error:     res.Error,
	}

	for _, p := range res.Trend {
		resp.Trend = append(resp.Trend, TrendPointResponse{
			Label:    p.Label,
			Visitors: p.Visitors,
			Start:    p.Start,
		})
	}

	return resp
}

func toEntries(in []domain.BreakdownEntry) []BreakdownEntryResponse {
	out := make([]BreakdownEntryResponse, 0, len(in))
	for _, e := range in {
		out = append(out, BreakdownEntryResponse{Label: e.Label, Value: e.Value, Percent: e.Percent})
	}
	return out
}
