// Package aggregator turns a batch of raw page-view events into a dashboard
// summary in one pass. It performs no I/O and never reads the clock; callers
// pass "now" in Options.
package aggregator

import (
	"math"
	"sort"
	"time"

	"pageview-analytics/internal/dashboard/core/domain"
)

const (
	DefaultBreakdownLimit = 6
	DefaultActiveWindow   = 5 * time.Minute
	// Matches the collector's accepted future skew.
	DefaultClockSkew      = time.Minute

	hourlyLabelLayout = "15:04"
	dailyLabelLayout  = "Jan 2"
)

type Options struct {
	Hours          int
	Now            time.Time
	Location       *time.Location
	BreakdownLimit int
	ActiveWindow   time.Duration
	ClockSkew      time.Duration
}

func (o Options) withDefaults() Options {
	if o.Hours <= 0 {
		o.Hours = 24
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.BreakdownLimit <= 0 {
		o.BreakdownLimit = DefaultBreakdownLimit
	}
	if o.ActiveWindow <= 0 {
		o.ActiveWindow = DefaultActiveWindow
	}
	if o.ClockSkew <= 0 {
		o.ClockSkew = DefaultClockSkew
	}
	return o
}

// BucketWidth is one hour for windows up to a day and one day otherwise.
func BucketWidth(hours int) time.Duration {
	if hours <= 24 {
		return time.Hour
	}
	return 24 * time.Hour
}

// BucketCount is ceil(window / width), never less than one.
func BucketCount(hours int) int {
	window := time.Duration(hours) * time.Hour
	n := int(math.Ceil(float64(window) / float64(BucketWidth(hours))))
	if n < 1 {
		return 1
	}
	return n
}

type visitorSet map[string]struct{}

func (s visitorSet) add(key string) { s[key] = struct{}{} }

// dimension maps a label to the visitors seen under it.
type dimension map[string]visitorSet

func (d dimension) add(label, key string) {
	set, ok := d[label]
	if !ok {
		set = visitorSet{}
		d[label] = set
	}
	set.add(key)
}

type pass struct {
	visitors    visitorSet
	occurrences map[string]int
	active      visitorSet
	buckets     []visitorSet
	pageViews   int
	lastEventAt time.Time

	pages     dimension
	hostnames dimension
	referrers dimension
	countries dimension
	devices   dimension
	systems   dimension
	browsers  dimension
	utm       dimension
}

func newPass(bucketCount int) *pass {
	p := &pass{
		visitors:    visitorSet{},
		occurrences: map[string]int{},
		active:      visitorSet{},
		buckets:     make([]visitorSet, bucketCount),
		pages:       dimension{},
		hostnames:   dimension{},
		referrers:   dimension{},
		countries:   dimension{},
		devices:     dimension{},
		systems:     dimension{},
		browsers:    dimension{},
		utm:         dimension{},
	}
	for i := range p.buckets {
		p.buckets[i] = visitorSet{}
	}
	return p
}

// Aggregate computes the dashboard for events already limited to the
// requested window. Events whose timestamp does not parse are ignored.
func Aggregate(events []domain.RawEvent, opts Options) domain.DashboardResult {
	opts = opts.withDefaults()

	width := BucketWidth(opts.Hours)
	count := BucketCount(opts.Hours)
	now := opts.Now.UTC()
	firstStart := now.Add(-time.Duration(count) * width)
	activeSince := now.Add(-opts.ActiveWindow)
	activeUntil := now.Add(opts.ClockSkew)

	p := newPass(count)

	for i := range events {
		ev := &events[i]

		t, ok := parseTimestamp(ev.OccurredAt)
		if !ok {
			continue
		}

		key := visitorKey(ev.VisitID, ev.SessionID, ev.EventID)

		p.pageViews++
		p.visitors.add(key)
		p.occurrences[key]++
		if t.After(p.lastEventAt) {
			p.lastEventAt = t
		}

		if !t.Before(activeSince) && !t.After(activeUntil) {
			p.active.add(key)
		}

		idx := int(t.Sub(firstStart) / width)
		if t.Before(firstStart) {
			idx = 0
		}
		if idx > count-1 {
			idx = count - 1
		}
		p.buckets[idx].add(key)

		u := parseURL(ev.URL)
		p.pages.add(pageLabel(ev.Path, u), key)
		p.hostnames.add(hostnameLabel(u), key)
		p.referrers.add(referrerLabel(ev.Referrer), key)
		p.countries.add(countryLabel(ev.Country), key)

		ua := ""
		if ev.UserAgent != nil {
			ua = *ev.UserAgent
		}
		client := ClassifyUserAgent(ua)
		p.devices.add(client.Device, key)
		p.systems.add(client.OS, key)
		p.browsers.add(client.Browser, key)

		if label, ok := utmLabel(u); ok {
			p.utm.add(label, key)
		}
	}

	total := len(p.visitors)

	result := domain.DashboardResult{
		Hours:       opts.Hours,
		GeneratedAt: now,
		Summary: domain.Summary{
			Visitors:       total,
			PageViews:      p.pageViews,
			ActiveVisitors: len(p.active),
			BounceRate:     bounceRate(p.occurrences),
		},
		Trend: trend(p.buckets, firstStart, width, opts.Location),
		Breakdowns: domain.Breakdowns{
			Pages:            breakdown(p.pages, total, opts.BreakdownLimit),
			Referrers:        breakdown(p.referrers, total, opts.BreakdownLimit),
			Countries:        breakdown(p.countries, total, opts.BreakdownLimit),
			Devices:          breakdown(p.devices, total, opts.BreakdownLimit),
			OperatingSystems: breakdown(p.systems, total, opts.BreakdownLimit),
			Browsers:         breakdown(p.browsers, total, opts.BreakdownLimit),
			Hostnames:        breakdown(p.hostnames, total, opts.BreakdownLimit),
			UTMSources:       breakdown(p.utm, total, opts.BreakdownLimit),
		},
	}
	if p.pageViews > 0 {
		last := p.lastEventAt
		result.Summary.LastEventAt = &last
	}

	return result
}

// bounceRate is the share of visitors seen exactly once in the window.
func bounceRate(occurrences map[string]int) float64 {
	if len(occurrences) == 0 {
		return 0
	}
	single := 0
	for _, n := range occurrences {
		if n == 1 {
			single++
		}
	}
	return float64(single) / float64(len(occurrences))
}

func trend(buckets []visitorSet, firstStart time.Time, width time.Duration, loc *time.Location) []domain.TrendPoint {
	layout := dailyLabelLayout
	if width < 24*time.Hour {
		layout = hourlyLabelLayout
	}

	points := make([]domain.TrendPoint, len(buckets))
	for i, set := range buckets {
		start := firstStart.Add(time.Duration(i) * width)
		points[i] = domain.TrendPoint{
			Label:    start.In(loc).Format(layout),
			Visitors: len(set),
			Start:    start.UTC().Format(time.RFC3339),
		}
	}
	return points
}

// breakdown ranks labels by distinct visitors, highest first, ties by label.
func breakdown(d dimension, total, limit int) []domain.BreakdownEntry {
	entries := []domain.BreakdownEntry{}
	if total == 0 {
		return entries
	}

	for label, set := range d {
		entries = append(entries, domain.BreakdownEntry{
			Label:   label,
			Value:   len(set),
			Percent: float64(len(set)) / float64(total),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Label < entries[j].Label
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
