package domain

import "time"

// RawEvent is one page-view row as read from the event store.
// OccurredAt is the raw timestamp text; rows that fail to parse are dropped
// during aggregation.
type RawEvent struct {
	EventID    string  `json:"eventId"`
	VisitID    *string `json:"visitId,omitempty"`
	SessionID  *string `json:"sessionId,omitempty"`
	OccurredAt string  `json:"occurredAt"`
	URL        *string `json:"url,omitempty"`
	Path       *string `json:"path,omitempty"`
	Country    *string `json:"country,omitempty"`
	City       *string `json:"city,omitempty"`
	Region     *string `json:"region,omitempty"`
	Referrer   *string `json:"referrer,omitempty"`
	UserAgent  *string `json:"userAgent,omitempty"`
}

type Summary struct {
	Visitors       int        `json:"visitors"`
	PageViews      int        `json:"pageViews"`
	ActiveVisitors int        `json:"activeVisitors"`
	BounceRate     float64    `json:"bounceRate"`
	LastEventAt    *time.Time `json:"lastEventAt"`
}

type TrendPoint struct {
	Label    string `json:"label"`
	Visitors int    `json:"visitors"`
	Start    string `json:"start"`
}

type BreakdownEntry struct {
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
}

type Breakdowns struct {
	Pages            []BreakdownEntry `json:"pages"`
	Referrers        []BreakdownEntry `json:"referrers"`
	Countries        []BreakdownEntry `json:"countries"`
	Devices          []BreakdownEntry `json:"devices"`
	OperatingSystems []BreakdownEntry `json:"operatingSystems"`
	Browsers         []BreakdownEntry `json:"browsers"`
	Hostnames        []BreakdownEntry `json:"hostnames"`
	UTMSources       []BreakdownEntry `json:"utmSources"`
}

// DashboardResult is built fresh per request. Error is set only when the
// event fetch failed, in which case every other figure is zero.
type DashboardResult struct {
	Range       Range        `json:"range"`
	Hours       int          `json:"hours"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Summary     Summary      `json:"summary"`
	Trend       []TrendPoint `json:"trend"`
	Breakdowns  Breakdowns   `json:"breakdowns"`
	Truncated   bool         `json:"truncated"`
	Error       string       `json:"error,omitempty"`
}

// EmptyBreakdowns returns a Breakdowns value with every list non-nil.
func EmptyBreakdowns() Breakdowns {
	return Breakdowns{
		Pages:            []BreakdownEntry{},
		Referrers:        []BreakdownEntry{},
		Countries:        []BreakdownEntry{},
		Devices:          []BreakdownEntry{},
		OperatingSystems: []BreakdownEntry{},
		Browsers:         []BreakdownEntry{},
		Hostnames:        []BreakdownEntry{},
		UTMSources:       []BreakdownEntry{},
	}
}

// EmptyDashboard is the zeroed result returned when events could not be loaded.
func EmptyDashboard(r Range, now time.Time, errMsg string) *DashboardResult {
	return &DashboardResult{
		Range:       r,
		Hours:       r.Hours(),
		GeneratedAt: now.UTC(),
		Trend:       []TrendPoint{},
		Breakdowns:  EmptyBreakdowns(),
		Error:       errMsg,
	}
}
